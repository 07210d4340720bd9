package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// service routes
	router.Get("/", h.banner)
	router.Get("/health", h.health)
	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/sign-in", h.signIn)
		r.Post("/sign-in/email", h.signIn)
		r.Post("/sign-out", h.signOut)
		r.Get("/get-session", h.getSession)
		if h.signUpEnabled {
			r.Post("/sign-up", h.signUp)
			r.Post("/sign-up/email", h.signUp)
		}
	})

	// routes with authorization
	router.Route("/api/locations", func(r chi.Router) {
		r.Use(h.requireSession, withGunzip, newCompressor().Handler)

		r.Get("/", h.listLocations)
		r.Post("/", h.createLocation)
		r.Get("/{id}", h.getLocation)
		r.Put("/{id}", h.updateLocation)
		r.Delete("/{id}", h.deactivateLocation)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}
