package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateTenantID(t *testing.T) {
	valid := []string{"sek-melati", "tenant_01", "A"}
	for _, v := range valid {
		if err := ValidateTenantID(v); err != nil {
			t.Errorf("expected %q to be valid, got %v", v, err)
		}
	}

	invalid := []string{"", "has space", "semi;colon", "sangat-panjang-sekali-sangat-panjang-sekali-sangat-panjang-sekali-1234567890"}
	for _, v := range invalid {
		if err := ValidateTenantID(v); err == nil {
			t.Errorf("expected %q to be rejected", v)
		}
	}
}

func TestValidatePageSize(t *testing.T) {
	if got := ValidatePageSize(0); got != 20 {
		t.Errorf("expected default 20, got %d", got)
	}
	if got := ValidatePageSize(500); got != 100 {
		t.Errorf("expected clamp to 100, got %d", got)
	}
	if got := ValidatePageSize(7); got != 7 {
		t.Errorf("expected passthrough 7, got %d", got)
	}
}

func TestSanitizeString(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"S12345", "S12345"},
		{"  S12345  ", "S12345"},
		{"S12\x0045", "S1245"},
		{"S12\x1b[31m45", "S12[31m45"},
		{"line\nbreak", "line\nbreak"},
	}
	for _, c := range cases {
		if got := SanitizeString(c.in); got != c.want {
			t.Errorf("SanitizeString(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLivenessHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	LivenessHandler(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected body ok, got %q", rec.Body.String())
	}
}

func TestTokenBucket_Exhausts(t *testing.T) {
	tb := NewTokenBucket(2, 1)

	if !tb.Allow() || !tb.Allow() {
		t.Fatal("expected first two requests to pass")
	}
	if tb.Allow() {
		t.Fatal("expected third request to be limited")
	}
}
