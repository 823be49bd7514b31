// Package testutil provides an in-process fake of the LibCal API for client
// tests: the token endpoint and the hours endpoint, served from canned
// payloads.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
)

// FakeLibCal serves the two endpoints the exporter talks to. Configure
// HoursBody with the raw JSON the hours endpoint should return, then point
// the client at Server.URL.
type FakeLibCal struct {
	Server *httptest.Server

	Token     string // bearer token issued by the token endpoint
	HoursBody string // raw JSON served by the hours endpoint

	mu       sync.Mutex
	lastIDs  string
	lastFrom string
	lastTo   string
}

func NewFakeLibCal() *FakeLibCal {
	f := &FakeLibCal{Token: "test-token", HoursBody: "[]"}

	r := mux.NewRouter()
	r.HandleFunc("/1.1/oauth/token", f.handleToken).Methods(http.MethodPost)
	r.HandleFunc("/1.1/hours/{ids}", f.handleHours).Methods(http.MethodGet)

	f.Server = httptest.NewServer(r)
	return f
}

func (f *FakeLibCal) Close() { f.Server.Close() }

// TokenURL returns the fake token endpoint.
func (f *FakeLibCal) TokenURL() string { return f.Server.URL + "/1.1/oauth/token" }

// HoursURL returns the fake hours endpoint base (location ids are appended
// by the client).
func (f *FakeLibCal) HoursURL() string { return f.Server.URL + "/1.1/hours" }

// LastRequest reports the location ids and date range of the most recent
// hours fetch.
func (f *FakeLibCal) LastRequest() (ids, from, to string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastIDs, f.lastFrom, f.lastTo
}

func (f *FakeLibCal) handleToken(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := r.BasicAuth(); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "missing client credentials"})
		return
	}
	if r.FormValue("grant_type") != "client_credentials" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "unsupported grant type"})
		return
	}

	json.NewEncoder(w).Encode(map[string]any{
		"access_token": f.Token,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (f *FakeLibCal) handleHours(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+f.Token {
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid access token"})
		return
	}

	f.mu.Lock()
	f.lastIDs = mux.Vars(r)["ids"]
	f.lastFrom = r.URL.Query().Get("from")
	f.lastTo = r.URL.Query().Get("to")
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(f.HoursBody))
}
