package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KYC_BACKEND_URL", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("METRICS_ADDR", "")
	t.Setenv("BACKEND_TIMEOUT", "")
	t.Setenv("COOKIE_SECURE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BackendURL != "http://localhost:8000" {
		t.Fatalf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.BackendTimeout != 0 {
		t.Fatalf("BackendTimeout = %v, want 0", cfg.BackendTimeout)
	}
	if cfg.CookieSecure {
		t.Fatalf("CookieSecure = true, want false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KYC_BACKEND_URL", "https://screening.internal:9000")
	t.Setenv("HTTP_ADDR", ":3000")
	t.Setenv("BACKEND_TIMEOUT", "30s")
	t.Setenv("COOKIE_SECURE", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BackendURL != "https://screening.internal:9000" {
		t.Fatalf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.HTTPAddr != ":3000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.BackendTimeout != 30*time.Second {
		t.Fatalf("BackendTimeout = %v", cfg.BackendTimeout)
	}
	if !cfg.CookieSecure {
		t.Fatalf("CookieSecure = false, want true")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("KYC_BACKEND_URL", "not a url")
	if _, err := Load(); err == nil {
		t.Fatalf("Load() error = nil, want backend URL error")
	}

	t.Setenv("KYC_BACKEND_URL", "http://localhost:8000")
	t.Setenv("BACKEND_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatalf("Load() error = nil, want timeout error")
	}
}
