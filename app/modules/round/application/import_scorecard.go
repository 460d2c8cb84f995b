package roundservice

import (
	"context"
	"fmt"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
)

// ImportScorecard parses an uploaded scorecard and submits it as a round.
// The file supplies holes only; the request supplies everything else.
func (s *RoundService) ImportScorecard(ctx context.Context, req ImportRequest) (results.OperationResult[rounddomain.Round, error], error) {
	parser, err := s.parsers.GetParser(req.Filename)
	if err != nil {
		return results.FailureResult[rounddomain.Round, error](fmt.Errorf("%w: %w", ErrInvalidScorecard, err)), nil
	}

	holes, err := parser.Parse(req.Data)
	if err != nil {
		return results.FailureResult[rounddomain.Round, error](fmt.Errorf("%w: %w", ErrInvalidScorecard, err)), nil
	}

	return s.SubmitRound(ctx, rounddomain.RoundSubmission{
		ClubID:     req.ClubID,
		PlayerID:   req.PlayerID,
		CourseID:   req.CourseID,
		CourseName: req.CourseName,
		PlayedOn:   req.PlayedOn,
		Tee:        req.Tee,
		Holes:      holes,
	})
}
