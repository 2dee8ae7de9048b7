package api

import (
	"net/http"

	"github.com/JaimeStill/menu-lab/pkg/openapi"
	"github.com/JaimeStill/menu-lab/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	basePath string,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
) {
	guard := runtime.Auth.Protect

	routes.Register(
		mux,
		basePath,
		spec,
		routes.Protect(guard, domain.Sections.Handler().Routes()),
		routes.Protect(guard, domain.Foods.Handler().Routes()),
		routes.Protect(guard, domain.Images.Handler().Routes()),
	)
}
