package roundhandlers

import (
	"context"
	"log/slog"

	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	roundevents "github.com/Black-And-White-Club/fairway/pkg/events/round"
	"go.opentelemetry.io/otel/trace"
)

// Handlers is the set of round event handlers registered on the router.
type Handlers interface {
	HandleRoundSubmissionRequested(ctx context.Context, payload *roundevents.RoundSubmissionRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

// RoundHandlers handles round-related events.
type RoundHandlers struct {
	service roundservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(service roundservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &RoundHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}
