// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"rukun/internal/config"
	"rukun/internal/infrastructure"
	"rukun/pkg/middleware"
	"rukun/pkg/module"
	"rukun/web/print"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	renderer, err := print.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("letter renderer init failed: %w", err)
	}

	mux := http.NewServeMux()
	registerRoutes(mux, domain, renderer)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
