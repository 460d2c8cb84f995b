package statshandlers

import (
	"context"
	"log/slog"

	statsservice "github.com/Black-And-White-Club/fairway/app/modules/stats/application"
	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
	"go.opentelemetry.io/otel/trace"
)

// Handlers is the set of stats event handlers registered on the router.
type Handlers interface {
	HandleMemberStatsRequested(ctx context.Context, payload *statsevents.MemberStatsRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRankingRequested(ctx context.Context, payload *statsevents.RankingRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

// StatsHandlers answers stats requests arriving on the bus.
type StatsHandlers struct {
	service statsservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewStatsHandlers creates a new StatsHandlers.
func NewStatsHandlers(service statsservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &StatsHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

func (h *StatsHandlers) failed(ctx context.Context, clubID string, reason error) []handlerwrapper.Result {
	h.logger.InfoContext(ctx, "Stats request rejected",
		attr.ExtractCorrelationID(ctx),
		attr.ClubID(clubID),
		attr.Error(reason),
	)
	return []handlerwrapper.Result{{
		Topic: statsevents.StatsRequestFailedV1,
		Payload: &statsevents.StatsRequestFailedPayloadV1{
			ClubID: clubID,
			Reason: reason.Error(),
		},
	}}
}
