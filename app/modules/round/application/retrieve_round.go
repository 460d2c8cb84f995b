package roundservice

import (
	"context"
	"errors"
	"fmt"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
)

// GetRound returns a round of the caller's club. Rounds of other clubs are
// reported as not found.
func (s *RoundService) GetRound(ctx context.Context, clubID string, roundID uuid.UUID) (rounddomain.Round, error) {
	round, err := s.repo.GetRound(ctx, nil, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return rounddomain.Round{}, ErrRoundNotFound
		}
		return rounddomain.Round{}, fmt.Errorf("failed to get round: %w", err)
	}
	if round.ClubID != clubID {
		return rounddomain.Round{}, ErrRoundNotFound
	}
	return round, nil
}

// ListPlayerRounds returns a member's rounds, newest first.
func (s *RoundService) ListPlayerRounds(ctx context.Context, clubID, playerID string, limit int) ([]rounddomain.Round, error) {
	rounds, err := s.repo.ListPlayerRounds(ctx, nil, clubID, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return rounds, nil
}
