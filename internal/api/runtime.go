package api

import (
	"github.com/JaimeStill/menu-lab/internal/config"
	"github.com/JaimeStill/menu-lab/internal/infrastructure"
	"github.com/JaimeStill/menu-lab/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination    pagination.Config
	PublicURL     string
	MaxUploadSize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Documents: infra.Documents,
			Storage:   infra.Storage,
			Locks:     infra.Locks,
			Auth:      infra.Auth,
		},
		Pagination:    cfg.API.Pagination,
		PublicURL:     cfg.PublicURL(),
		MaxUploadSize: cfg.Storage.MaxUploadSizeBytes(),
	}
}
