package statsrouter

import (
	"context"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	statshandlers "github.com/Black-And-White-Club/fairway/app/modules/stats/infrastructure/handlers"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"
)

// StatsRouter registers the stats handlers on the shared watermill router.
type StatsRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
	metrics    handlerwrapper.Metrics
}

func NewStatsRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
	metrics handlerwrapper.Metrics,
) *StatsRouter {
	return &StatsRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
		metrics:    metrics,
	}
}

// Configure registers every stats handler.
func (r *StatsRouter) Configure(_ context.Context, handlers statshandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    r.metrics,
	}

	registerHandler(deps, statsevents.MemberStatsRequestedV1, handlers.HandleMemberStatsRequested)
	registerHandler(deps, statsevents.RankingRequestedV1, handlers.HandleRankingRequested)
	return nil
}

type handlerDeps struct {
	router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	logger     *slog.Logger
	tracer     trace.Tracer
	metrics    handlerwrapper.Metrics
}

// registerHandler registers a transformation-pattern handler with a typed payload.
func registerHandler[T any](
	deps handlerDeps,
	topic string,
	handler func(context.Context, *T) ([]handlerwrapper.Result, error),
) {
	handlerName := "stats." + topic

	h := deps.router.AddHandler(
		handlerName,
		topic,
		deps.subscriber,
		"", // the publisher routes on the topic metadata
		deps.publisher,
		handlerwrapper.WrapTransformingTyped(
			handlerName,
			deps.logger,
			deps.tracer,
			deps.metrics,
			handler,
		),
	)
	h.AddMiddleware(middleware.Retry{
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		Logger:          watermill.NewSlogLogger(deps.logger),
	}.Middleware)
}
