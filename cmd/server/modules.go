package main

import (
	"net/http"

	"github.com/JaimeStill/menu-lab/internal/api"
	"github.com/JaimeStill/menu-lab/internal/config"
	"github.com/JaimeStill/menu-lab/internal/infrastructure"
	"github.com/JaimeStill/menu-lab/pkg/middleware"
	"github.com/JaimeStill/menu-lab/pkg/module"
	"github.com/JaimeStill/menu-lab/web/scalar"
)

type Modules struct {
	API    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	scalarModule, err := scalar.NewModule("/scalar", cfg.API.OpenAPI.Title, cfg.API.BasePath+"/openapi.json")
	if err != nil {
		return nil, err
	}
	scalarModule.Use(middleware.TrimSlash())

	return &Modules{
		API:    apiModule,
		Scalar: scalarModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
