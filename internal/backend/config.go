package backend

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds API gateway configuration.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.jeevibe.app".
	BaseURL string

	// Timeout is the per-request transport timeout. There is no
	// request-level retry below this layer; failures surface to the
	// session's retry slot. Default: 20s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://api.jeevibe.app",
		Timeout: 20 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if u := os.Getenv("JEEVIBE_API_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("JEEVIBE_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// Validate checks the config is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("API base URL must be http(s): %q", c.BaseURL)
	}
	return nil
}
