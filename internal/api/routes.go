package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hyperengineering/stride/internal/auth"
)

// NewRouter creates a new router with all routes configured
func NewRouter(h *Handler, tokens *auth.Manager) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/health", h.Health)
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)

		// Protected routes (valid token required)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(tokens))

			r.Get("/auth/me", h.Me)

			r.Get("/dashboard", h.Dashboard)
			r.Post("/generate-tasks", h.GenerateTasks)

			r.Post("/journals", h.SaveJournal)
			r.Get("/journals", h.ListJournals)
			r.Get("/journals/{date}", h.GetJournal)

			r.Post("/goals", h.CreateGoal)
			r.Get("/goals", h.ListGoals)
			r.Put("/goals/{id}", h.UpdateGoal)
			r.Delete("/goals/{id}", h.DeleteGoal)

			r.Get("/tasks", h.ListTasks)
			r.Put("/tasks/{id}", h.UpdateTask)
		})
	})

	return r
}
