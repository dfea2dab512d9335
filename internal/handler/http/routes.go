package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getServerVersion)

		r.Post("/v1/features/online", h.getOnlineFeatures)
		r.Post("/v2/features/online", h.getOnlineFeaturesV2)
		r.Post("/v1/features/batch", h.getBatchFeatures)
		r.Get("/v1/jobs/{jobID}", h.getJob)
	})

	if h.collector != nil {
		router.Method(http.MethodGet, "/metrics", h.collector.Handler())
	}

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
