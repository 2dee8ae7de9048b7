package keylock

import (
	"fmt"
	"os"
	"time"
)

// Config controls lock wait behavior.
type Config struct {
	// Timeout bounds how long a request waits for a contended lock.
	// Default: "10s"
	Timeout string `toml:"timeout"`
}

type Env struct {
	Timeout string
}

// TimeoutDuration returns the parsed timeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates.
func (c *Config) Finalize(env *Env) error {
	if c.Timeout == "" {
		c.Timeout = "10s"
	}
	if env != nil && env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}
