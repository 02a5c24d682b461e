package api

import (
	"log/slog"
	"net/http"

	"github.com/hyperengineering/stride/internal/types"
)

// Dashboard handles GET /api/dashboard. The first request of a day triggers
// generation; later requests return the stored state with fresh stats.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := MustUserIDFromContext(r.Context())

	view, err := h.dashboard.Today(r.Context(), userID)
	if err != nil {
		slog.Error("dashboard assembly failed", "user_id", userID, "error", err)
		WriteProblem(w, r, http.StatusInternalServerError, "Failed to fetch dashboard data")
		return
	}

	writeJSON(w, http.StatusOK, types.DashboardResponse{
		Tasks:            view.Tasks,
		Goals:            view.Goals,
		DashboardContent: view.Content,
		Stats:            view.Stats,
	})
}

// GenerateTasks handles POST /api/generate-tasks, replacing today's batch.
func (h *Handler) GenerateTasks(w http.ResponseWriter, r *http.Request) {
	userID := MustUserIDFromContext(r.Context())

	result, err := h.dashboard.Regenerate(r.Context(), userID)
	if err != nil {
		slog.Error("task regeneration failed", "user_id", userID, "error", err)
		WriteProblem(w, r, http.StatusInternalServerError, "Failed to generate tasks. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, types.GenerateResponse{
		Tasks:            result.Tasks,
		DashboardContent: result.Content,
		Message:          result.Message,
	})
}
