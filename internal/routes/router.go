package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"aeromaint/opsdesk/internal/api"
	"aeromaint/opsdesk/internal/config"
	"aeromaint/opsdesk/internal/db"
	"aeromaint/opsdesk/internal/logging"
	"aeromaint/opsdesk/internal/metrics"
	"aeromaint/opsdesk/internal/middleware"
)

// RegisterRoutes builds the router, wires dependencies, and returns the
// handler plus the initialized dependencies for the caller to hold on to.
func RegisterRoutes(cfg *config.Config, upSince time.Time) (http.Handler, *api.Dependencies, error) {

	r := chi.NewRouter()

	metricsReg := metrics.NewMetricsRegistry()

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		return nil, nil, err
	}

	handlers := api.NewHandlers(deps)

	RegisterAPIRoutes(r, metricsReg, handlers, deps)

	return r, deps, nil
}
