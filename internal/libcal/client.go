// Package libcal is the HTTP client for the LibCal Hours API: the OAuth2
// client-credentials handshake and the hours fetch. The core never sees any
// of this; it consumes the decoded document only.
package libcal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"libcal-hours-export/internal/models"
	"libcal-hours-export/pkg/config"
	errs "libcal-hours-export/pkg/errors"
)

type Client struct {
	httpClient   *http.Client
	oauthURL     string
	hoursURL     string
	locationIDs  string
	clientID     string
	clientSecret string
	logger       *slog.Logger
}

func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
			// the token endpoint must not be followed across redirects
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		oauthURL:     cfg.OAuthURL,
		hoursURL:     cfg.HoursURL,
		locationIDs:  cfg.LocationIDs,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       logger,
	}
}

// Authenticate performs the OAuth2 client-credentials exchange and returns
// the bearer token.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.NewUpstream("libcal.Authenticate", "oauth", "cannot build token request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewUpstream("libcal.Authenticate", "oauth", "token request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewUpstream("libcal.Authenticate", "oauth", "cannot read token response", err)
	}

	c.logger.Debug("token response", "status", resp.StatusCode, "body", string(body))

	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tokens); err != nil {
		return "", errs.NewUpstream("libcal.Authenticate", "oauth", "cannot decode token response", err)
	}
	if tokens.AccessToken == "" {
		return "", errs.NewUpstream("libcal.Authenticate", "oauth", "no access token in response", nil)
	}

	return tokens.AccessToken, nil
}

// FetchHours retrieves the hours document for the configured locations over
// the inclusive from/to date range. An explicit error payload from the API
// (an object carrying an "error" key instead of the expected array) is
// surfaced as a fatal UpstreamError.
func (c *Client) FetchHours(ctx context.Context, token, fromDate, toDate string) ([]models.Location, error) {
	u, err := url.Parse(c.hoursURL)
	if err != nil {
		return nil, errs.NewUpstream("libcal.FetchHours", "libcal", "invalid hours URL", err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/" + c.locationIDs

	q := u.Query()
	q.Set("from", fromDate)
	q.Set("to", toDate)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errs.NewUpstream("libcal.FetchHours", "libcal", "cannot build hours request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewUpstream("libcal.FetchHours", "libcal", "hours request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewUpstream("libcal.FetchHours", "libcal", "cannot read hours response", err)
	}

	c.logger.Debug("hours response", "status", resp.StatusCode, "body", string(body))

	return DecodeHours(body)
}

// DecodeHours decodes a raw hours payload, distinguishing the expected
// location array from an error object.
func DecodeHours(body []byte) ([]models.Location, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(trimmed, &apiErr)
		return nil, errs.NewUpstream("libcal.DecodeHours", "libcal",
			"error returned from LibCal Hours API: "+apiErr.Error, nil)
	}

	var locations []models.Location
	if err := json.Unmarshal(trimmed, &locations); err != nil {
		return nil, errs.NewUpstream("libcal.DecodeHours", "libcal", "cannot decode hours response", err)
	}
	return locations, nil
}
