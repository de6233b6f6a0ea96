package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.live)
		r.Post("/auth/signUp", h.signUp)
		r.Post("/auth/login", h.login)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
