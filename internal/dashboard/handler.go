package dashboard

import (
	"log/slog"
	"net/http"

	"rukun/pkg/handlers"
	"rukun/pkg/routes"
)

// Handler provides HTTP endpoints for dashboard operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// InsightResponse wraps the generated demographic commentary.
type InsightResponse struct {
	Insight string `json:"insight"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "dashboard"),
	}
}

// Routes returns the route group definition for dashboard endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/dashboard",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/stats", Handler: h.Stats},
			{Method: "POST", Pattern: "/insight", Handler: h.Insight},
		},
	}
}

// Stats returns the aggregated neighborhood profile.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.sys.Stats(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stats)
}

// Insight generates a demographic commentary for the current stats. The
// response always carries text; model failures surface as the fallback
// message, not as an error status.
func (h *Handler) Insight(w http.ResponseWriter, r *http.Request) {
	text, err := h.sys.Insight(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, InsightResponse{Insight: text})
}
