// Package httptransport assembles the public HTTP surface: liveness,
// metrics, and the versioned reporting API.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"paylens/internal/payments/handler"
	"paylens/internal/transport/http/shared"
)

// HealthService defines behaviour for readiness probes.
type HealthService interface {
	Probe(ctx context.Context) error
}

// ProbeFunc adapts a plain function to the HealthService interface.
type ProbeFunc func(ctx context.Context) error

// Probe implements the HealthService interface.
func (f ProbeFunc) Probe(ctx context.Context) error { return f(ctx) }

// NewRouter wires the public routes. health may be nil when the configured
// store has nothing worth probing.
func NewRouter(logger *slog.Logger, health HealthService, reports *handler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
		defer cancel()

		if health != nil {
			if err := health.Probe(ctx); err != nil {
				logger.ErrorContext(ctx, "health probe failed", "error", err.Error())
				shared.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
					"error":  err.Error(),
				})
				return
			}
		}
		shared.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		reports.Register(api)
	})

	return r
}
