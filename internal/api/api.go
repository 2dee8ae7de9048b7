// Package api assembles the menu domain systems into an HTTP module mounted
// under the configured base path.
package api

import (
	"net/http"

	"github.com/JaimeStill/menu-lab/internal/config"
	"github.com/JaimeStill/menu-lab/internal/infrastructure"
	"github.com/JaimeStill/menu-lab/pkg/middleware"
	"github.com/JaimeStill/menu-lab/pkg/module"
	"github.com/JaimeStill/menu-lab/pkg/openapi"
)

func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, cfg.API.BasePath, spec, runtime, domain)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
