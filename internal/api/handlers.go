package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hyperengineering/stride/internal/auth"
	"github.com/hyperengineering/stride/internal/dashboard"
	"github.com/hyperengineering/stride/internal/store"
)

// Handler implements the API handlers
type Handler struct {
	store     store.Store
	dashboard *dashboard.Service
	tokens    *auth.Manager
	model     string
	version   string
}

// NewHandler creates a new Handler with store.Store interface
func NewHandler(s store.Store, d *dashboard.Service, tokens *auth.Manager, model, version string) *Handler {
	return &Handler{
		store:     s,
		dashboard: d,
		tokens:    tokens,
		model:     model,
		version:   version,
	}
}

// Health handles GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
		"model":   h.model,
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
