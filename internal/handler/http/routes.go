package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-crud-api/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, utils.ContentTypeJSON))
	router.Use(h.withAuthentication)
	router.Use(withGZipRequest)

	// every path and method goes to the dispatcher, which owns 404 and 405
	router.HandleFunc("/*", h.dispatch)
	router.NotFound(h.dispatch)
	router.MethodNotAllowed(h.dispatch)

	return router
}
