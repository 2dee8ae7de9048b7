package auth

import (
	"fmt"
	"os"
	"strconv"
)

// Config controls bearer token verification.
type Config struct {
	Enabled bool   `toml:"enabled"`
	Secret  string `toml:"secret"`
	Issuer  string `toml:"issuer"`
}

type Env struct {
	Enabled string
	Secret  string
	Issuer  string
}

// Finalize loads environment overrides and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Secret != "" {
		c.Secret = overlay.Secret
	}
	if overlay.Issuer != "" {
		c.Issuer = overlay.Issuer
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Enabled != "" {
		if v := os.Getenv(env.Enabled); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Enabled = b
			}
		}
	}
	if env.Secret != "" {
		if v := os.Getenv(env.Secret); v != "" {
			c.Secret = v
		}
	}
	if env.Issuer != "" {
		if v := os.Getenv(env.Issuer); v != "" {
			c.Issuer = v
		}
	}
}

func (c *Config) validate() error {
	if c.Enabled && len(c.Secret) < 32 {
		return fmt.Errorf("secret must be at least 32 bytes when auth is enabled")
	}
	return nil
}
