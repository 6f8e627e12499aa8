package api

import (
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func SetupRoutes(handler *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Setup middleware
	for _, middleware := range SetupMiddleware(handler.renderTimeout) {
		r.Use(middleware)
	}

	// JSON content type
	r.Use(render.SetContentType(render.ContentTypeJSON))

	// Health check endpoint
	r.Get("/health", handler.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/terrain", handler.GetTerrainTable)

		// Rendering is CPU bound
		r.With(RenderThrottle(runtime.GOMAXPROCS(0))).Get("/maps/{kind}.png", handler.GetMap)

		r.Get("/renders", handler.ListRenders)
		r.Get("/renders/{id}", handler.GetRender)
	})

	return r
}
