package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/v1", func(api chi.Router) {
		// routes without authorization
		api.Get("/status", h.status)

		// API-key protected routes
		api.Group(func(r chi.Router) {
			r.Use(h.requireAPIKey)
			r.Get("/check", h.check)
			r.Post("/auth", h.authenticate)

			r.Group(func(admin chi.Router) {
				admin.Use(h.requireAdmin)
				admin.Get("/admin-check", h.check)
			})
		})

		// access-token protected routes
		api.Group(func(r chi.Router) {
			r.Use(h.requireAccessToken)
			r.Get("/jwt-check", h.check)
			r.Post("/refresh", h.refresh)
			r.Post("/logout", h.logout)

			r.Group(func(admin chi.Router) {
				admin.Use(h.requireAdmin)
				admin.Get("/jwt-admin-check", h.check)
			})
		})

		// user directory, admin only
		api.Route("/users", func(r chi.Router) {
			r.Use(h.requireAPIKey)
			r.Use(h.requireAdmin)

			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
			r.Get("/{userID}", h.getUser)
			r.Patch("/{userID}", h.updateUser)
			r.Delete("/{userID}", h.deleteUser)
			r.Post("/{userID}/gen-api-key", h.generateUserAPIKey)
		})
	})

	return router
}
