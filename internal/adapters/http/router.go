// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-service/internal/adapters/http/middleware"
)

// Handlers groups the route handlers mounted by NewRouter. Metrics may be
// nil, in which case /metrics is not served.
type Handlers struct {
	Todo    *handlers.TodoHandler
	Auth    *handlers.AuthHandler
	Admin   *handlers.AdminHandler
	Health  *handlers.HealthHandler
	Metrics http.Handler
}

// Guards are applied to route groups rather than globally. Authenticate is
// required; RateLimit may be nil when rate limiting is disabled.
type Guards struct {
	Authenticate func(http.Handler) http.Handler
	RateLimit    func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given; nil entries are skipped.
func NewRouter(h Handlers, g Guards, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", handlers.Index)

	// Health endpoints (outside /api prefix).
	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		// Anonymous routes are limited per client IP.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(g.RateLimit))
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/login", h.Auth.Login)
		})

		// Authenticated routes are limited per caller.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(g.Authenticate, g.RateLimit))

			r.Get("/auth/me", h.Auth.Me)

			r.Get("/todos", h.Todo.ListTodos)
			r.Post("/todos", h.Todo.CreateTodo)
			r.Get("/todos/{id}", h.Todo.GetTodo)
			r.Put("/todos/{id}", h.Todo.UpdateTodo)
			r.Delete("/todos/{id}", h.Todo.DeleteTodo)
			r.Patch("/todos/{id}/toggle", h.Todo.ToggleTodo)

			r.With(middleware.RequireAdmin()).Get("/admin/users", h.Admin.ListUsers)
		})
	})

	return r
}
