package docstore

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/JaimeStill/menu-lab/pkg/database"
)

// Driver selects the document store backend.
type Driver string

const (
	DriverBadger   Driver = "badger"
	DriverPostgres Driver = "postgres"
	DriverMongo    Driver = "mongo"
)

// Config selects a backend and carries the settings for each.
// Only the selected backend's settings are validated.
type Config struct {
	Driver   Driver          `toml:"driver"`
	Postgres database.Config `toml:"postgres"`
	Mongo    MongoConfig     `toml:"mongo"`
	Badger   BadgerConfig    `toml:"badger"`
}

// Env maps environment variable names for document store configuration.
type Env struct {
	Driver   string
	Postgres *database.Env
	Mongo    *MongoEnv
	Badger   *BadgerEnv
}

// MongoConfig contains MongoDB connection settings.
type MongoConfig struct {
	URI         string `toml:"uri"`
	Database    string `toml:"database"`
	Collection  string `toml:"collection"`
	ConnTimeout string `toml:"conn_timeout"`
}

type MongoEnv struct {
	URI         string
	Database    string
	Collection  string
	ConnTimeout string
}

// BadgerConfig contains embedded Badger settings. InMemory ignores Path.
type BadgerConfig struct {
	Path     string `toml:"path"`
	InMemory bool   `toml:"in_memory"`
}

type BadgerEnv struct {
	Path     string
	InMemory string
}

// Finalize applies defaults, loads environment overrides, and validates the selected backend.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}

	switch c.Driver {
	case DriverPostgres:
		var pgEnv *database.Env
		if env != nil {
			pgEnv = env.Postgres
		}
		if err := c.Postgres.Finalize(pgEnv); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	case DriverMongo:
		var mEnv *MongoEnv
		if env != nil {
			mEnv = env.Mongo
		}
		if err := c.Mongo.Finalize(mEnv); err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
	case DriverBadger:
		var bEnv *BadgerEnv
		if env != nil {
			bEnv = env.Badger
		}
		if err := c.Badger.Finalize(bEnv); err != nil {
			return fmt.Errorf("badger: %w", err)
		}
	default:
		return fmt.Errorf("invalid driver: %s (must be badger, postgres, or mongo)", c.Driver)
	}
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Driver != "" {
		c.Driver = overlay.Driver
	}
	c.Postgres.Merge(&overlay.Postgres)
	c.Mongo.Merge(&overlay.Mongo)
	c.Badger.Merge(&overlay.Badger)
}

func (c *Config) loadDefaults() {
	if c.Driver == "" {
		c.Driver = DriverBadger
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Driver != "" {
		if v := os.Getenv(env.Driver); v != "" {
			c.Driver = Driver(v)
		}
	}
}

// ConnTimeoutDuration parses and returns the connection timeout as a time.Duration.
func (c *MongoConfig) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

func (c *MongoConfig) Finalize(env *MongoEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

func (c *MongoConfig) Merge(overlay *MongoConfig) {
	if overlay.URI != "" {
		c.URI = overlay.URI
	}
	if overlay.Database != "" {
		c.Database = overlay.Database
	}
	if overlay.Collection != "" {
		c.Collection = overlay.Collection
	}
	if overlay.ConnTimeout != "" {
		c.ConnTimeout = overlay.ConnTimeout
	}
}

func (c *MongoConfig) loadDefaults() {
	if c.URI == "" {
		c.URI = "mongodb://localhost:27017"
	}
	if c.Collection == "" {
		c.Collection = "documents"
	}
	if c.ConnTimeout == "" {
		c.ConnTimeout = "5s"
	}
}

func (c *MongoConfig) loadEnv(env *MongoEnv) {
	if env.URI != "" {
		if v := os.Getenv(env.URI); v != "" {
			c.URI = v
		}
	}
	if env.Database != "" {
		if v := os.Getenv(env.Database); v != "" {
			c.Database = v
		}
	}
	if env.Collection != "" {
		if v := os.Getenv(env.Collection); v != "" {
			c.Collection = v
		}
	}
	if env.ConnTimeout != "" {
		if v := os.Getenv(env.ConnTimeout); v != "" {
			c.ConnTimeout = v
		}
	}
}

func (c *MongoConfig) validate() error {
	if c.Database == "" {
		return fmt.Errorf("database required")
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	return nil
}

func (c *BadgerConfig) Finalize(env *BadgerEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	if !c.InMemory && c.Path == "" {
		return fmt.Errorf("path required unless in_memory")
	}
	return nil
}

func (c *BadgerConfig) Merge(overlay *BadgerConfig) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.InMemory {
		c.InMemory = true
	}
}

func (c *BadgerConfig) loadDefaults() {
	if c.Path == "" && !c.InMemory {
		c.Path = ".data/docstore"
	}
}

func (c *BadgerConfig) loadEnv(env *BadgerEnv) {
	if env.Path != "" {
		if v := os.Getenv(env.Path); v != "" {
			c.Path = v
		}
	}
	if env.InMemory != "" {
		if v := os.Getenv(env.InMemory); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.InMemory = b
			}
		}
	}
}
