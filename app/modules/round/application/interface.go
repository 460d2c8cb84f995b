package roundservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	"github.com/google/uuid"
)

// Service records rounds and reads them back.
//
// SubmitRound and ImportScorecard return a failure result for invalid input
// and an error only when the round could not be stored.
type Service interface {
	SubmitRound(ctx context.Context, sub rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error)
	ImportScorecard(ctx context.Context, req ImportRequest) (results.OperationResult[rounddomain.Round, error], error)
	GetRound(ctx context.Context, clubID string, roundID uuid.UUID) (rounddomain.Round, error)
	ListPlayerRounds(ctx context.Context, clubID, playerID string, limit int) ([]rounddomain.Round, error)
}

// ImportRequest is an uploaded scorecard plus the round details the file
// does not carry.
type ImportRequest struct {
	ClubID     string
	PlayerID   string
	CourseID   string
	CourseName string
	PlayedOn   string
	Tee        string
	Filename   string
	Data       []byte
}
