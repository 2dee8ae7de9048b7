package storage

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

// Driver selects the blob storage backend.
type Driver string

const (
	DriverFilesystem Driver = "filesystem"
	DriverS3         Driver = "s3"
)

// Config contains blob storage configuration.
type Config struct {
	// Driver selects the backend. Default: "filesystem"
	Driver Driver `toml:"driver"`

	// BasePath is the root directory for filesystem storage.
	// Default: ".data/blobs"
	BasePath         string   `toml:"base_path"`
	MaxUploadSize    string   `toml:"max_upload_size"`
	S3               S3Config `toml:"s3"`
	maxUploadSizeVal int64
}

// S3Config configures the S3-compatible backend.
type S3Config struct {
	Bucket   string `toml:"bucket"`
	Region   string `toml:"region"`
	Endpoint string `toml:"endpoint"`

	// PathStyle addresses objects as endpoint/bucket/key, required by most
	// self-hosted S3 implementations.
	PathStyle bool `toml:"path_style"`
}

type Env struct {
	Driver        string
	BasePath      string
	MaxUploadSize string
	S3Bucket      string
	S3Region      string
	S3Endpoint    string
	S3PathStyle   string
}

func (c *Config) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the storage configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Driver != "" {
		c.Driver = overlay.Driver
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if size, err := units.FromHumanSize(overlay.MaxUploadSize); err == nil {
		c.MaxUploadSize = overlay.MaxUploadSize
		c.maxUploadSizeVal = size
	}
	if overlay.S3.Bucket != "" {
		c.S3.Bucket = overlay.S3.Bucket
	}
	if overlay.S3.Region != "" {
		c.S3.Region = overlay.S3.Region
	}
	if overlay.S3.Endpoint != "" {
		c.S3.Endpoint = overlay.S3.Endpoint
	}
	if overlay.S3.PathStyle {
		c.S3.PathStyle = true
	}
}

func (c *Config) loadDefaults() {
	if c.Driver == "" {
		c.Driver = DriverFilesystem
	}
	if c.BasePath == "" {
		c.BasePath = ".data/blobs"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
	if c.S3.Region == "" {
		c.S3.Region = "us-east-1"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Driver != "" {
		if v := os.Getenv(env.Driver); v != "" {
			c.Driver = Driver(v)
		}
	}
	if env.BasePath != "" {
		if v := os.Getenv(env.BasePath); v != "" {
			c.BasePath = v
		}
	}
	if env.MaxUploadSize != "" {
		if v := os.Getenv(env.MaxUploadSize); v != "" {
			c.MaxUploadSize = v
		}
	}
	if env.S3Bucket != "" {
		if v := os.Getenv(env.S3Bucket); v != "" {
			c.S3.Bucket = v
		}
	}
	if env.S3Region != "" {
		if v := os.Getenv(env.S3Region); v != "" {
			c.S3.Region = v
		}
	}
	if env.S3Endpoint != "" {
		if v := os.Getenv(env.S3Endpoint); v != "" {
			c.S3.Endpoint = v
		}
	}
	if env.S3PathStyle != "" {
		if v := os.Getenv(env.S3PathStyle); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.S3.PathStyle = b
			}
		}
	}
}

func (c *Config) validate() error {
	switch c.Driver {
	case DriverFilesystem:
		if c.BasePath == "" {
			return fmt.Errorf("base_path required")
		}
	case DriverS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket required")
		}
	default:
		return fmt.Errorf("unsupported driver: %s", c.Driver)
	}

	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	return nil
}
