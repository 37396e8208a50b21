// Package http assembles the chi router and the HTTP server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/siamhora/siamhora/internal/config"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
	"github.com/siamhora/siamhora/internal/interfaces/http/handlers"
	"github.com/siamhora/siamhora/internal/interfaces/http/middleware"
)

// RouterDeps are the collaborators the router wires into handlers.
type RouterDeps struct {
	Weekday *handlers.WeekdayHandler
	Astro   *handlers.AstroHandler
	Health  *handlers.HealthHandler

	// MetricsHandler serves /metrics; nil disables the endpoint.
	MetricsHandler http.Handler
	// HTTPMetrics feeds per-request observations; may be nil.
	HTTPMetrics middleware.HTTPMetrics

	Logger logging.Logger
	Server config.ServerConfig
}

// NewRouter builds the full middleware chain and route table.
func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.RequestLogger(deps.Logger, deps.HTTPMetrics))
	if deps.Server.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(deps.Server.RateLimitRPS, deps.Server.RateLimitBurst))
	}

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/weekday", deps.Weekday.Weekday)
		r.Get("/weekday-th", deps.Weekday.WeekdayThai)
		r.Get("/validate-weekday", deps.Weekday.Validate)

		r.Get("/astro-chart", deps.Astro.Chart)
		r.Get("/astro-transit", deps.Astro.Transit)
		r.Get("/astro-match", deps.Astro.Match)
	})

	return r
}

//Personal.AI order the ending
