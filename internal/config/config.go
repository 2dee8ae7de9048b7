// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JaimeStill/menu-lab/pkg/auth"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
	"github.com/JaimeStill/menu-lab/pkg/keylock"
	"github.com/JaimeStill/menu-lab/pkg/logging"
	"github.com/JaimeStill/menu-lab/pkg/storage"
	"github.com/pelletier/go-toml/v2"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv specifies the environment name for configuration overlays.
	EnvServiceEnv = "SERVICE_ENV"

	// EnvServiceShutdownTimeout overrides the service shutdown timeout.
	EnvServiceShutdownTimeout = "SERVICE_SHUTDOWN_TIMEOUT"

	EnvServiceVersion = "SERVICE_VERSION"
	EnvServiceDomain  = "SERVICE_DOMAIN"
)

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
	Output: "LOGGING_OUTPUT",
}

var authEnv = &auth.Env{
	Enabled: "AUTH_ENABLED",
	Secret:  "AUTH_SECRET",
	Issuer:  "AUTH_ISSUER",
}

var locksEnv = &keylock.Env{
	Timeout: "LOCKS_TIMEOUT",
}

// Config represents the root service configuration.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        docstore.Config `toml:"database"`
	Storage         storage.Config  `toml:"storage"`
	Logging         logging.Config  `toml:"logging"`
	Auth            auth.Config     `toml:"auth"`
	Locks           keylock.Config  `toml:"locks"`
	API             APIConfig       `toml:"api"`
	Version         string          `toml:"version"`
	Domain          string          `toml:"domain"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
}

// Env returns the active overlay environment name.
func (c *Config) Env() string {
	return os.Getenv(EnvServiceEnv)
}

// ShutdownTimeoutDuration parses and returns the shutdown timeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// PublicURL is the origin plus API base path that image download URLs are built from.
func (c *Config) PublicURL() string {
	return c.Domain + c.API.BasePath
}

// Load reads and parses the base configuration file and applies any environment-specific overlay.
func Load() (*Config, error) {
	return LoadFile(BaseConfigFile)
}

// LoadFile is Load with an explicit base file. The overlay is looked up in
// the same directory.
func LoadFile(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if file := overlayPath(path); file != "" {
		overlay, err := load(file)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", file, err)
		}
		cfg.Merge(overlay)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Locks.Finalize(locksEnv); err != nil {
		return fmt.Errorf("locks: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	if overlay.Domain != "" {
		c.Domain = overlay.Domain
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Logging.Merge(&overlay.Logging)
	c.Auth.Merge(&overlay.Auth)
	c.Locks.Merge(&overlay.Locks)
	c.API.Merge(&overlay.API)
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.Domain == "" {
		c.Domain = "http://localhost:8080"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServiceShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvServiceVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvServiceDomain); v != "" {
		c.Domain = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// overlayPath locates the overlay next to the base file.
func overlayPath(base string) string {
	if env := os.Getenv(EnvServiceEnv); env != "" {
		overlayPath := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
		if _, err := os.Stat(overlayPath); err == nil {
			return overlayPath
		}
	}
	return ""
}
