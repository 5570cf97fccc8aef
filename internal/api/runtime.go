package api

import (
	"rukun/internal/config"
	"rukun/internal/genai"
	"rukun/internal/infrastructure"
	"rukun/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration and the
// model gateway shared by the domain systems.
type Runtime struct {
	*infrastructure.Infrastructure
	Gateway    genai.System
	Pagination pagination.Config
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
		},
		Gateway:    genai.New(&cfg.GenAI, logger),
		Pagination: cfg.API.Pagination,
	}
}
