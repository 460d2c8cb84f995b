package rounddb

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for round persistence. A nil db uses the
// repository's own connection; pass a transaction to join it.
//
// Error semantics:
//   - ErrNotFound: the round does not exist (GetRound)
//   - Other errors: infrastructure failures
type Repository interface {
	CreateRound(ctx context.Context, db bun.IDB, round rounddomain.Round) error
	GetRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) (rounddomain.Round, error)
	// ListClubRounds returns every round of a club, newest first.
	ListClubRounds(ctx context.Context, db bun.IDB, clubID string) ([]rounddomain.Round, error)
	// ListPlayerRounds returns a member's rounds, newest first. A limit of
	// zero or less returns all of them.
	ListPlayerRounds(ctx context.Context, db bun.IDB, clubID, playerID string, limit int) ([]rounddomain.Round, error)
	ListCourseRounds(ctx context.Context, db bun.IDB, clubID, courseKey string) ([]rounddomain.Round, error)
	// ListClubIDs returns every club with at least one round.
	ListClubIDs(ctx context.Context, db bun.IDB) ([]string, error)
}
