package roundhandlers

import (
	"context"
	"errors"

	"github.com/Black-And-White-Club/fairway/app/shared/attr"
	"github.com/Black-And-White-Club/fairway/app/shared/handlerwrapper"
	roundevents "github.com/Black-And-White-Club/fairway/pkg/events/round"
)

// HandleRoundSubmissionRequested records a submitted round. A rejected
// submission produces a failure event; a storage error is returned so the
// message is redelivered.
func (h *RoundHandlers) HandleRoundSubmissionRequested(
	ctx context.Context,
	payload *roundevents.RoundSubmissionRequestedPayloadV1,
) ([]handlerwrapper.Result, error) {
	sub := payload.Submission

	result, err := h.service.SubmitRound(ctx, sub)
	if err != nil {
		return nil, err
	}

	if result.Failure != nil {
		reason := *result.Failure
		h.logger.InfoContext(ctx, "Round submission rejected",
			attr.ExtractCorrelationID(ctx),
			attr.PlayerID(sub.PlayerID),
			attr.Error(reason),
		)
		return []handlerwrapper.Result{{
			Topic: roundevents.RoundSubmissionFailedV1,
			Payload: &roundevents.RoundSubmissionFailedPayloadV1{
				ClubID:   sub.ClubID,
				PlayerID: sub.PlayerID,
				Reason:   reason.Error(),
			},
		}}, nil
	}

	if result.Success != nil {
		saved := roundevents.SavedPayload(*result.Success)
		return []handlerwrapper.Result{{
			Topic:   roundevents.RoundSavedV1,
			Payload: &saved,
		}}, nil
	}

	return nil, errors.New("unexpected empty result from SubmitRound service")
}
