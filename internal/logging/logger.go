// Package logging configures the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvFormat controls the output handler format for structured logs.
	EnvFormat = "LOG_FORMAT"
	// EnvLevel controls the minimum severity level for structured logs.
	EnvLevel = "LOG_LEVEL"

	defaultFormat = "json"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config is the validated logging configuration derived from
// environment variables.
type Config struct {
	Format string
	Level  slog.Level
}

// DefaultConfig returns the default structured logging configuration.
func DefaultConfig() Config {
	return Config{Format: defaultFormat, Level: slog.LevelInfo}
}

// LoadConfigFromEnv parses and validates logging environment variables.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if raw := strings.ToLower(strings.TrimSpace(os.Getenv(EnvFormat))); raw != "" {
		switch raw {
		case "json", "text":
			cfg.Format = raw
		default:
			return Config{}, fmt.Errorf("%s must be one of: json, text", EnvFormat)
		}
	}

	if raw := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLevel))); raw != "" {
		level, ok := levels[raw]
		if !ok {
			return Config{}, fmt.Errorf("%s must be one of: debug, info, warn, error", EnvLevel)
		}
		cfg.Level = level
	}

	return cfg, nil
}

// NewLogger creates a structured logger tagged with the application and
// command context.
func NewLogger(cfg Config, writer io.Writer, command string) *slog.Logger {
	if writer == nil {
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	command = strings.TrimSpace(command)
	if command == "" {
		command = "kyc-screener"
	}
	return slog.New(handler).With("app", "kyc-screener", "command", command)
}

// BootstrapFromEnv loads logging config from env, installs the default
// logger, and returns it.
func BootstrapFromEnv(command string, writer io.Writer) (*slog.Logger, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	logger := NewLogger(cfg, writer, command)
	slog.SetDefault(logger)
	return logger, nil
}
