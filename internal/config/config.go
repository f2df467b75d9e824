// Package config loads runtime settings from ATRISURE_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds process-wide settings. Command-line flags override these after Load.
type Config struct {
	// ExportDir receives CSV exports. Empty means ~/.atrisure/exports.
	ExportDir string `env:"ATRISURE_EXPORT_DIR"`
	// DefaultModule is the module shown at startup.
	DefaultModule string `env:"ATRISURE_DEFAULT_MODULE" envDefault:"client-orbit"`
	// LogFile receives structured logs; the terminal is owned by the UI.
	LogFile string `env:"ATRISURE_LOG_FILE"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"ATRISURE_LOG_LEVEL" envDefault:"info"`
	// OTelEndpoint enables OTLP trace export when set (e.g. http://localhost:4318).
	OTelEndpoint string `env:"ATRISURE_OTEL_ENDPOINT"`
	// OTelService is the service.name resource attribute.
	OTelService string `env:"ATRISURE_OTEL_SERVICE" envDefault:"atrisure"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(os.TempDir(), "atrisure.log")
	}
	if _, err := c.SlogLevel(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// SlogLevel converts LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
