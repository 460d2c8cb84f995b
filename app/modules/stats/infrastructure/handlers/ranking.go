package statshandlers

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
)

// HandleRankingRequested answers with the leaderboard of one metric.
func (h *StatsHandlers) HandleRankingRequested(
	ctx context.Context,
	payload *statsevents.RankingRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	result, err := h.service.Rankings(ctx, payload.ClubID, payload.Metric)
	if err != nil {
		return nil, err
	}
	if result.Failure != nil {
		return h.failed(ctx, payload.ClubID, *result.Failure), nil
	}
	if result.Success == nil {
		return nil, errors.New("unexpected empty result from Rankings service")
	}

	ranking := *result.Success
	return []handlerwrapper.Result{{
		Topic: statsevents.RankingRetrievedV1,
		Payload: &statsevents.RankingRetrievedPayloadV1{
			ClubID: payload.ClubID,
			Metric: ranking.Metric.Key,
			Label:  ranking.Metric.Label,
			Rows:   ranking.Rows,
		},
	}}, nil
}
