package statshandlers

import (
	"context"
	"errors"

	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
)

// HandleMemberStatsRequested answers with the stats of every member, or of
// one member when the request names a player.
func (h *StatsHandlers) HandleMemberStatsRequested(
	ctx context.Context,
	payload *statsevents.MemberStatsRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	var members []statsdomain.MemberStats

	if payload.PlayerID == "" {
		result, err := h.service.MemberStats(ctx, payload.ClubID)
		if err != nil {
			return nil, err
		}
		if result.Failure != nil {
			return h.failed(ctx, payload.ClubID, *result.Failure), nil
		}
		if result.Success == nil {
			return nil, errors.New("unexpected empty result from MemberStats service")
		}
		members = *result.Success
	} else {
		result, err := h.service.PlayerStats(ctx, payload.ClubID, payload.PlayerID)
		if err != nil {
			return nil, err
		}
		if result.Failure != nil {
			return h.failed(ctx, payload.ClubID, *result.Failure), nil
		}
		if result.Success == nil {
			return nil, errors.New("unexpected empty result from PlayerStats service")
		}
		members = []statsdomain.MemberStats{*result.Success}
	}

	if members == nil {
		members = []statsdomain.MemberStats{}
	}
	return []handlerwrapper.Result{{
		Topic: statsevents.MemberStatsRetrievedV1,
		Payload: &statsevents.MemberStatsRetrievedPayloadV1{
			ClubID:  payload.ClubID,
			Members: members,
		},
	}}, nil
}
