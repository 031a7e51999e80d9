package router

import (
	"net/http"

	"totem-api/internal/docs"
	"totem-api/internal/handler"
	"totem-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	metaHandler *handler.MetaHandler,
	errorResponder *handler.ErrorResponder,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Any unmatched route renders the uniform not-found envelope. A method
	// mismatch on a known path is treated the same way so clients always see
	// a single not-found shape.
	r.NotFound(errorResponder.RouteNotFound)
	r.MethodNotAllowed(errorResponder.RouteNotFound)

	r.Get("/health", metaHandler.Health)
	r.Get("/", metaHandler.Info)

	r.Route("/api-docs", func(r chi.Router) {
		r.Get("/", docs.UI)
		r.Get("/openapi.json", docs.OpenAPI)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.GetAll)
		r.Post("/", productHandler.Create)
		r.Get("/sku/{sku}", productHandler.GetBySKU)
		r.Get("/{id}", productHandler.GetByID)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})

	return r
}
