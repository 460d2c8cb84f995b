package roundservice

import (
	"context"
	"fmt"
	"strings"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// SubmitRound validates a submission, aggregates every hole and stores the
// round. Validation problems come back as a failure result.
func (s *RoundService) SubmitRound(ctx context.Context, sub rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error) {
	return withTelemetry(s, ctx, "SubmitRound", sub.PlayerID, func(ctx context.Context) (results.OperationResult[rounddomain.Round, error], error) {
		round, err := s.buildRound(sub)
		if err != nil {
			return results.FailureResult[rounddomain.Round, error](err), nil
		}

		return runInTx(s, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[rounddomain.Round, error], error) {
			if err := s.repo.CreateRound(ctx, db, round); err != nil {
				return results.OperationResult[rounddomain.Round, error]{}, fmt.Errorf("failed to store round: %w", err)
			}
			return results.SuccessResult[rounddomain.Round, error](round), nil
		})
	})
}

// buildRound is the entry validation in front of the aggregator: it rejects
// what the statistics engine assumes never happens.
func (s *RoundService) buildRound(sub rounddomain.RoundSubmission) (rounddomain.Round, error) {
	clubID := strings.TrimSpace(sub.ClubID)
	playerID := strings.TrimSpace(sub.PlayerID)
	switch {
	case clubID == "":
		return rounddomain.Round{}, ErrMissingClub
	case playerID == "":
		return rounddomain.Round{}, ErrMissingPlayer
	case strings.TrimSpace(sub.CourseID) == "" && strings.TrimSpace(sub.CourseName) == "":
		return rounddomain.Round{}, ErrMissingCourse
	}

	if n := len(sub.Holes); n != 9 && n != 18 {
		return rounddomain.Round{}, fmt.Errorf("%w: got %d", ErrInvalidHoleCount, n)
	}

	seen := make(map[int]bool, len(sub.Holes))
	holes := make([]rounddomain.Hole, 0, len(sub.Holes))
	for _, hs := range sub.Holes {
		h, err := buildHole(hs)
		if err != nil {
			return rounddomain.Round{}, err
		}
		if seen[h.Number] {
			return rounddomain.Round{}, fmt.Errorf("%w: %d", ErrDuplicateHole, h.Number)
		}
		seen[h.Number] = true
		holes = append(holes, h)
	}

	playedOn, err := s.parsePlayedOn(sub.PlayedOn)
	if err != nil {
		return rounddomain.Round{}, err
	}

	round := rounddomain.Round{
		ID:         uuid.New(),
		ClubID:     clubID,
		PlayerID:   playerID,
		CourseID:   strings.TrimSpace(sub.CourseID),
		CourseName: strings.TrimSpace(sub.CourseName),
		PlayedOn:   playedOn,
		Tee:        strings.TrimSpace(sub.Tee),
		Holes:      holes,
	}
	round.Holes = round.SortedHoles()
	return round, nil
}

func buildHole(hs rounddomain.HoleSubmission) (rounddomain.Hole, error) {
	if hs.Number < 1 || hs.Number > 18 {
		return rounddomain.Hole{}, fmt.Errorf("%w: got %d", ErrInvalidHoleNumber, hs.Number)
	}
	if hs.Par < 3 || hs.Par > 6 {
		return rounddomain.Hole{}, fmt.Errorf("hole %d: %w: got %d", hs.Number, ErrInvalidPar, hs.Par)
	}
	if hs.Pin != nil && !hs.Pin.Valid() {
		return rounddomain.Hole{}, fmt.Errorf("hole %d: %w: %q", hs.Number, ErrInvalidPin, *hs.Pin)
	}
	if hs.Yardage != nil && *hs.Yardage <= 0 {
		return rounddomain.Hole{}, fmt.Errorf("hole %d: %w: yardage must be positive", hs.Number, ErrInvalidScore)
	}

	entry, err := hs.Entry()
	if err != nil {
		return rounddomain.Hole{}, fmt.Errorf("%w: %w", ErrInvalidShots, err)
	}
	if m := entry.Manual; m != nil {
		if m.Putts < 0 || m.OBCount < 0 || m.BunkerCount < 0 || m.PenaltyCount < 0 {
			return rounddomain.Hole{}, fmt.Errorf("hole %d: %w: negative count", hs.Number, ErrInvalidScore)
		}
		switch m.Fairway {
		case "", rounddomain.FairwayKeep, rounddomain.FairwayLeft, rounddomain.FairwayRight:
		default:
			return rounddomain.Hole{}, fmt.Errorf("hole %d: %w: fairway %q", hs.Number, ErrInvalidScore, m.Fairway)
		}
	}

	h := rounddomain.AggregateHole(entry)
	if h.Strokes < 1 {
		return rounddomain.Hole{}, fmt.Errorf("hole %d: %w: no strokes recorded", hs.Number, ErrInvalidScore)
	}
	if h.Putts > h.Strokes {
		return rounddomain.Hole{}, fmt.Errorf("hole %d: %w: more putts than strokes", hs.Number, ErrInvalidScore)
	}
	return h, nil
}
