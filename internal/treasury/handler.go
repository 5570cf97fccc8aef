package treasury

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"rukun/pkg/handlers"
	"rukun/pkg/pagination"
	"rukun/pkg/routes"
)

// Handler provides HTTP endpoints for treasury operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// InsightResponse wraps the generated financial commentary.
type InsightResponse struct {
	Insight string `json:"insight"`
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "treasury"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for treasury endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/treasury",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/transactions", Handler: h.List},
			{Method: "GET", Pattern: "/transactions/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/transactions", Handler: h.Create},
			{Method: "POST", Pattern: "/transactions/search", Handler: h.Search},
			{Method: "DELETE", Pattern: "/transactions/{id}", Handler: h.Delete},
			{Method: "GET", Pattern: "/summary", Handler: h.Summary},
			{Method: "POST", Pattern: "/insight", Handler: h.Insight},
		},
	}
}

// List returns a paginated list of transactions with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single transaction by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidTransaction)
		return
	}

	t, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching transactions.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidTransaction)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create records a new transaction from a JSON body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidTransaction)
		return
	}

	t, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, t)
}

// Delete removes a transaction by its UUID path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidTransaction)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary returns the ledger totals.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.sys.Summarize(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, s)
}

// Insight generates a financial commentary for the current ledger. The
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
