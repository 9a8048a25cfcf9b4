package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appassess "github.com/bryanwahyu/penilai-edu/internal/application/assessments"
	"github.com/bryanwahyu/penilai-edu/internal/config"
)

func TestRouter_LivenessBypassesAuth(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.APIKeys = map[string]string{"sek-melati": "secret"}
	h := NewRouter(&appassess.Service{}, nil, cfg)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from liveness probe, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected body ok, got %q", rec.Body.String())
	}

	// everything under /v1 still requires a key
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sek-melati/analyses", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without Authorization header, got %d", rec.Code)
	}
}
