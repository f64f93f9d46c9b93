package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)
		r.Get("/protocol", h.getProtocolInfo)
		r.Get("/columns/{column}", h.getColumn)
		r.Get("/file", h.getFile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
