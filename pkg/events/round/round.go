// Package roundevents defines the topics and payloads of the round module.
package roundevents

import (
	"time"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/google/uuid"
)

const (
	// RoundSubmissionRequestedV1 asks the round module to record a round.
	RoundSubmissionRequestedV1 = "round.submission.requested.v1"
	// RoundSavedV1 announces a persisted round.
	RoundSavedV1 = "round.saved.v1"
	// RoundSubmissionFailedV1 reports a submission rejected by validation.
	RoundSubmissionFailedV1 = "round.submission.failed.v1"
)

// RoundSubmissionRequestedPayloadV1 carries a submission through the bus.
type RoundSubmissionRequestedPayloadV1 struct {
	Submission rounddomain.RoundSubmission `json:"submission"`
}

// RoundSavedPayloadV1 summarises a stored round.
type RoundSavedPayloadV1 struct {
	RoundID    uuid.UUID `json:"round_id"`
	ClubID     string    `json:"club_id"`
	PlayerID   string    `json:"player_id"`
	CourseKey  string    `json:"course_key"`
	PlayedOn   time.Time `json:"played_on"`
	HoleCount  int       `json:"hole_count"`
	TotalScore int       `json:"total_score"`
	ToPar      int       `json:"to_par"`
}

// RoundSubmissionFailedPayloadV1 explains a rejected submission.
type RoundSubmissionFailedPayloadV1 struct {
	ClubID   string `json:"club_id"`
	PlayerID string `json:"player_id"`
	Reason   string `json:"reason"`
}

// SavedPayload builds the RoundSavedV1 payload for r.
func SavedPayload(r rounddomain.Round) RoundSavedPayloadV1 {
	return RoundSavedPayloadV1{
		RoundID:    r.ID,
		ClubID:     r.ClubID,
		PlayerID:   r.PlayerID,
		CourseKey:  r.CourseKey(),
		PlayedOn:   r.PlayedOn,
		HoleCount:  r.HoleCount(),
		TotalScore: r.TotalScore(),
		ToPar:      r.ToPar(),
	}
}
