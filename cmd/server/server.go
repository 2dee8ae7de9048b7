package main

import (
	"time"

	"github.com/JaimeStill/menu-lab/internal/config"
	"github.com/JaimeStill/menu-lab/internal/infrastructure"
	"github.com/JaimeStill/menu-lab/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"docstore", cfg.Database.Driver,
		"storage", cfg.Storage.Driver,
		"auth", cfg.Auth.Enabled,
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    server.New(&cfg.Server, router, infra.Logger),
	}, nil
}

// Start begins all subsystems and returns once they are launched.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within the timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
