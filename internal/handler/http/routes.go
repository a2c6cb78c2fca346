package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip, withOptions)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// probes
	router.Get("/", h.root)
	router.Get("/readyz", h.readiness)

	apiRoutes := func(api chi.Router) {
		api.Get("/version", h.getServerVersion)

		// routes with authorization
		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/user-profile", func(r chi.Router) {
				r.Get("/", h.getProfile)
				r.Post("/", h.createProfile)
				r.Put("/", h.updateProfile)
			})

			r.Route("/medications", func(r chi.Router) {
				r.Get("/", h.listMedications)
				r.Post("/", h.createMedication)
				r.Put("/{id}", h.updateMedication)
				r.Delete("/{id}", h.deleteMedication)
			})

			r.Route("/blood-pressure-logs", func(r chi.Router) {
				r.Get("/", h.listBloodPressureLogs)
				r.Post("/", h.createBloodPressureLog)
				r.Get("/export", h.exportBloodPressureLogs)
				r.Put("/{id}", h.updateBloodPressureLog)
				r.Delete("/{id}", h.deleteBloodPressureLog)
			})
		})
	}
	if h.apiPrefix == "" || h.apiPrefix == "/" {
		router.Group(apiRoutes)
	} else {
		router.Route(h.apiPrefix, apiRoutes)
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
