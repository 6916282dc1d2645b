package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a new Chi router with all middleware and routes.
// requestLogger receives one entry per request.
func NewRouter(handler *Handler, requestLogger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(requestLogger))
	r.Use(middleware.Recoverer)

	// The underscore keeps the probe out of the shortcode namespace
	r.Get("/_healthz", handler.Healthz)

	r.Post("/shorturls", handler.CreateShortURL)
	r.Get("/shorturls/{shortcode}", handler.GetStats)

	// Root-level redirect route
	r.Get("/{shortcode}", handler.Redirect)

	return r
}
