// Package config defines service configuration and how it is loaded.
package config

import (
	"fmt"
	"time"

	"github.com/example/expedicoes/internal/logging"
)

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "EXPEDICOES_"

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":5000".
	Addr string `koanf:"addr"`

	// DBPath is the SQLite database file. ":memory:" is accepted for tests.
	DBPath string `koanf:"db_path"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoder: text or json.
	LogFormat string `koanf:"log_format"`

	// RateLimitRPS and RateLimitBurst size the per-client token bucket.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`

	// ShutdownTimeoutSec bounds graceful HTTP shutdown.
	ShutdownTimeoutSec int `koanf:"shutdown_timeout_sec"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:               ":5000",
		DBPath:             "expedicoes.db",
		LogLevel:           "info",
		LogFormat:          logging.FormatText,
		RateLimitRPS:       50,
		RateLimitBurst:     100,
		ShutdownTimeoutSec: 15,
	}
}

// ShutdownTimeout returns ShutdownTimeoutSec as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DBPath == "":
		return fmt.Errorf("%w: db_path must not be empty", ErrInvalidConfig)
	case c.RateLimitRPS <= 0:
		return fmt.Errorf("%w: rate_limit_rps must be positive", ErrInvalidConfig)
	case c.RateLimitBurst <= 0:
		return fmt.Errorf("%w: rate_limit_burst must be positive", ErrInvalidConfig)
	case c.ShutdownTimeoutSec <= 0:
		return fmt.Errorf("%w: shutdown_timeout_sec must be positive", ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("%w: unknown log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
