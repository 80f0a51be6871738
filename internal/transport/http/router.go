// Package httptransport assembles the HTTP surface: middleware chain, feature
// routes, health and metrics endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	identityHandler "gatekeep/internal/identity/handler"
	"gatekeep/internal/platform/metrics"
	"gatekeep/internal/platform/middleware"
	registrationHandler "gatekeep/internal/registration/handler"
	"gatekeep/pkg/platform/httputil"
	"gatekeep/pkg/platform/middleware/metadata"
	"gatekeep/pkg/platform/middleware/requesttime"
)

const requestTimeout = 30 * time.Second

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps collects everything the router mounts.
type Deps struct {
	Registration *registrationHandler.Handler
	Identity     *identityHandler.Handler
	Metrics      *metrics.Metrics
	Logger       *slog.Logger

	// Checks maps dependency names to their health probes; nil values are
	// skipped so optional backends (redis, postgres) can stay unwired in
	// development.
	Checks map[string]HealthChecker
}

// NewRouter builds the full middleware chain and mounts all endpoints.
func NewRouter(deps Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Latency(deps.Metrics))

	r.Get("/healthz", healthHandler(deps.Checks))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		deps.Registration.Register(r)
		deps.Identity.Register(r)
	})

	return r
}

func healthHandler(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok"}
		code := http.StatusOK

		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check.Health(r.Context()); err != nil {
				status[name] = err.Error()
				status["status"] = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			status[name] = "ok"
		}

		httputil.WriteJSON(w, code, status)
	}
}
