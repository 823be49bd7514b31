package libcal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	testutil "libcal-hours-export/internal/testing"
	"libcal-hours-export/pkg/config"
	errs "libcal-hours-export/pkg/errors"
)

func testClient(f *testutil.FakeLibCal) *Client {
	cfg := &config.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		LocationIDs:  "101,202",
		HoursURL:     f.HoursURL(),
		OAuthURL:     f.TokenURL(),
		HTTPTimeout:  5 * time.Second,
	}
	return NewClient(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthenticate(t *testing.T) {
	f := testutil.NewFakeLibCal()
	defer f.Close()

	token, err := testClient(f).Authenticate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != f.Token {
		t.Fatalf("token = %q, want %q", token, f.Token)
	}
}

func TestFetchHours(t *testing.T) {
	f := testutil.NewFakeLibCal()
	defer f.Close()
	f.HoursBody = `[
		{"lid": 101, "name": "Main Library", "dates": {
			"2024-01-10": {"status": "closed"}
		}},
		{"lid": 202, "name": "Annex", "dates": []}
	]`

	c := testClient(f)
	locations, err := c.FetchHours(context.Background(), f.Token, "2024-01-10", "2024-01-12")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 2 || locations[0].LID != 101 {
		t.Fatalf("unexpected locations: %+v", locations)
	}

	ids, from, to := f.LastRequest()
	if ids != "101,202" {
		t.Fatalf("location ids = %q, want 101,202", ids)
	}
	if from != "2024-01-10" || to != "2024-01-12" {
		t.Fatalf("date range = %q..%q", from, to)
	}
}

func TestFetchHours_ErrorPayload(t *testing.T) {
	f := testutil.NewFakeLibCal()
	defer f.Close()

	// a stale token makes the fake answer with an error object
	_, err := testClient(f).FetchHours(context.Background(), "stale-token", "2024-01-10", "2024-01-10")
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errs.Is(err, errs.ErrUpstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestDecodeHours_ErrorObject(t *testing.T) {
	_, err := DecodeHours([]byte(`{"error": "invalid_client"}`))
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errs.Is(err, errs.ErrUpstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
}

func TestDecodeHours_EmptyArray(t *testing.T) {
	locations, err := DecodeHours([]byte(`[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(locations) != 0 {
		t.Fatalf("unexpected locations: %+v", locations)
	}
}
