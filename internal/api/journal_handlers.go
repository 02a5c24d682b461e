package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hyperengineering/stride/internal/types"
	"github.com/hyperengineering/stride/internal/validation"
)

// SaveJournal handles POST /api/journals. Writes are upserts keyed on
// (user, date): a second save for the same day updates the existing entry.
func (h *Handler) SaveJournal(w http.ResponseWriter, r *http.Request) {
	userID := MustUserIDFromContext(r.Context())

	var req types.JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}

	if errs := validation.ValidateJournalRequest(req); len(errs) > 0 {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", errs)
		return
	}

	entry, err := h.store.UpsertJournal(r.Context(), types.NewJournalEntry{
		UserID:  userID,
		Date:    req.Date,
		Title:   req.Title,
		Content: req.Content,
		Mood:    req.Mood,
	})
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// ListJournals handles GET /api/journals
func (h *Handler) ListJournals(w http.ResponseWriter, r *http.Request) {
	userID := MustUserIDFromContext(r.Context())

	entries, err := h.store.ListJournals(r.Context(), userID)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// GetJournal handles GET /api/journals/{date}
func (h *Handler) GetJournal(w http.ResponseWriter, r *http.Request) {
	userID := MustUserIDFromContext(r.Context())

	date := chi.URLParam(r, "date")
	if err := validation.ValidateDate("date", date); err != nil {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", []validation.ValidationError{*err})
		return
	}

	entry, err := h.store.GetJournalByDate(r.Context(), userID, date)
	if err != nil {
		MapStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}
