package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/menu-lab/pkg/lifecycle"
)

// System defines the storage operations interface for blob storage.
// Keys are slash-separated object paths such as
// "restaurants/r1/foodItems/1700000000000_salad.png".
type System interface {
	// Store saves data at the specified key, overwriting existing contents.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete deletes the data at the specified key.
	// Returns nil if the key does not exist (idempotent).
	Delete(ctx context.Context, key string) error

	// Validate reports whether a key exists and is accessible.
	Validate(ctx context.Context, key string) (bool, error)

	// Start registers lifecycle hooks with the coordinator.
	Start(lc *lifecycle.Coordinator) error
}

// New creates the storage system selected by cfg.Driver.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Driver {
	case DriverFilesystem, "":
		return NewFilesystem(cfg.BasePath, logger)
	case DriverS3:
		return NewS3(&cfg.S3, logger)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
