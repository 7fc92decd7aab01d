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
	router.Use(h.withAPIVersion)

	// Registered before the route groups so the mounted sub-routers inherit
	// the 405-to-404 behaviour.
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Route("/api", func(api chi.Router) {
		api.Get("/", h.apiInfo)

		api.Route("/v1", func(r chi.Router) {
			// routes without authorization
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.Group(func(protected chi.Router) {
				protected.Use(h.auth)

				protected.Post("/logout", h.logout)
				protected.Get("/user", h.currentUser)
				protected.Get("/check", h.checkToken)
				protected.Get("/test", h.versionTest)

				protected.Route("/habits", func(habits chi.Router) {
					habits.Get("/", h.listHabits)
					habits.Post("/", h.createHabit)
					habits.Get("/{habitID}", h.getHabit)
					habits.Put("/{habitID}", h.updateHabit)
					habits.Patch("/{habitID}", h.updateHabit)
					habits.Delete("/{habitID}", h.deleteHabit)
				})
			})
		})

		// Unversioned aliases kept for clients that predate the /v1 prefix.
		api.Route("/legacy", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.Group(func(protected chi.Router) {
				protected.Use(h.auth)

				protected.Post("/logout", h.logout)
				protected.Get("/user", h.currentUser)
				protected.Get("/check", h.checkToken)
			})
		})
	})

	return router
}
