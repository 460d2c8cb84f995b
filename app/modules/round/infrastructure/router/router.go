package roundrouter

import (
	"context"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/fairway/app/eventbus"
	roundhandlers "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/handlers"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	roundevents "github.com/Black-And-White-Club/fairway/pkg/events/round"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/trace"
)

// RoundRouter registers the round handlers on the shared watermill router.
type RoundRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
	metrics    handlerwrapper.Metrics
}

func NewRoundRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
	metrics handlerwrapper.Metrics,
) *RoundRouter {
	return &RoundRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
		metrics:    metrics,
	}
}

// Configure registers every round handler.
func (r *RoundRouter) Configure(_ context.Context, handlers roundhandlers.Handlers) error {
	deps := handlerDeps{
		router:     r.Router,
		subscriber: r.subscriber,
		publisher:  r.publisher,
		logger:     r.logger,
		tracer:     r.tracer,
		metrics:    r.metrics,
	}

	registerHandler(deps, roundevents.RoundSubmissionRequestedV1, handlers.HandleRoundSubmissionRequested)
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
	handlerName := "round." + topic

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
