// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, document store, blob storage, locks,
// authentication) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/menu-lab/internal/config"
	"github.com/JaimeStill/menu-lab/pkg/auth"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
	"github.com/JaimeStill/menu-lab/pkg/keylock"
	"github.com/JaimeStill/menu-lab/pkg/lifecycle"
	"github.com/JaimeStill/menu-lab/pkg/logging"
	"github.com/JaimeStill/menu-lab/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Documents docstore.Store
	Storage   storage.System
	Locks     *keylock.Locker
	Auth      *auth.Authenticator
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	docs, err := docstore.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("docstore init failed: %w", err)
	}

	blobs, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Documents: docs,
		Storage:   blobs,
		Locks:     keylock.New(cfg.Locks.TimeoutDuration()),
		Auth:      auth.New(&cfg.Auth, logger),
	}, nil
}

// Start initializes all infrastructure systems and registers them with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Documents.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("docstore start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}
	return nil
}
