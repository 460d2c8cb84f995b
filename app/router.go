package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/fairway/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// newWatermillRouter creates the router every module registers its handlers
// on. Retries are configured per handler.
func newWatermillRouter(obs *observability.Observability) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{CloseTimeout: 30 * time.Second}, watermill.NewSlogLogger(obs.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}
	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
	)

	builder := metrics.NewPrometheusMetricsBuilder(obs.Registry, "fairway", "router")
	builder.AddPrometheusRouterMetrics(router)
	return router, nil
}

// Handler builds the HTTP API. Everything below /api requires a bearer
// token.
func (app *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		app.AuthModule.Protect(r)
		app.RoundModule.RegisterRoutes(r)
		app.StatsModule.RegisterRoutes(r)
	})
	return r
}
