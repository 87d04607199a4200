// Package config loads console configuration from the environment,
// with optional .env file support.
package config

import (
	"errors"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr   = ":8080"
	defaultBackendURL = "http://localhost:8000"
)

// Config is the resolved console configuration. The screening backend
// origin used to be a hard-coded constant in the UI layer; it is
// configuration here so deployments can point the console elsewhere.
type Config struct {
	// BackendURL is the screening service origin.
	BackendURL string
	// BackendTimeout bounds each backend call. Zero means no deadline,
	// matching the historical behavior of the console.
	BackendTimeout time.Duration
	// HTTPAddr is the console listen address.
	HTTPAddr string
	// MetricsAddr is the Prometheus listener address; empty or "off"
	// disables it.
	MetricsAddr string
	// CookieSecure marks the session cookie Secure.
	CookieSecure bool
}

// Load reads configuration from the environment. A missing .env file
// is fine; a malformed one is not.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, err
		}
	}

	cfg := Config{
		BackendURL:   getenvDefault("KYC_BACKEND_URL", defaultBackendURL),
		HTTPAddr:     getenvDefault("HTTP_ADDR", defaultHTTPAddr),
		MetricsAddr:  os.Getenv("METRICS_ADDR"),
		CookieSecure: getenvBoolDefault("COOKIE_SECURE", false),
	}

	if v := strings.TrimSpace(os.Getenv("BACKEND_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return Config{}, errors.New("BACKEND_TIMEOUT must be a non-negative duration")
		}
		cfg.BackendTimeout = d
	}

	parsed, err := url.Parse(cfg.BackendURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, errors.New("KYC_BACKEND_URL must be an absolute http(s) URL")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBoolDefault(key string, def bool) bool {
	switch strings.TrimSpace(os.Getenv(key)) {
	case "1":
		return true
	case "0":
		return false
	default:
		return def
	}
}
