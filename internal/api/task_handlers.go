package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperengineering/stride/internal/types"
	"github.com/hyperengineering/stride/internal/validation"
)

// ListTasks handles GET /api/tasks?date=
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID := MustUserIDFromContext(r.Context())

	date := r.URL.Query().Get("date")
	if date != "" {
		if err := validation.ValidateDate("date", date); err != nil {
			WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
			return
		}
	}

	tasks, err := h.store.ListTasks(r.Context(), userID, date)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

// UpdateTask handles PUT /api/tasks/{id}, typically toggling completion.
func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID := MustUserIDFromContext(r.Context())

	var upd types.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}

	if errs := validation.ValidateTaskUpdate(upd); len(errs) > 0 {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", errs)
		return
	}

	task, err := h.store.UpdateTask(r.Context(), userID, chi.URLParam(r, "id"), upd)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}
