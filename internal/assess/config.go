package assess

import (
	"fmt"
	"net/url"
	"time"

	"github.com/devgrill/repogrill/internal/env"
)

// Config holds backend connection configuration.
type Config struct {
	// BaseURL is the address of the analysis backend, without a trailing
	// endpoint path. Both /analyze and /evaluate hang off this base.
	BaseURL string

	// APIKey, when set, is sent as an x-api-key header on every request.
	APIKey string

	// Timeout is the maximum duration of a single round trip. Analysis of a
	// large repository can take a while, so the default is generous.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000",
		Timeout: 120 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back to
// defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	cfg.BaseURL = env.GetEnv("REPOGRILL_API_URL", cfg.BaseURL)
	cfg.APIKey = env.GetEnv("REPOGRILL_API_KEY", cfg.APIKey)
	cfg.Timeout = env.GetEnvDuration("REPOGRILL_TIMEOUT", cfg.Timeout)
	return cfg
}

// Validate checks that the configured base URL is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("REPOGRILL_API_URL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid REPOGRILL_API_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("REPOGRILL_API_URL must be an http or https URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("REPOGRILL_TIMEOUT must be positive")
	}
	return nil
}
