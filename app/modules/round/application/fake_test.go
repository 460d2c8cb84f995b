package roundservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	rounddb "github.com/Black-And-White-Club/fairway/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Round Repo
// ------------------------

type FakeRoundRepo struct {
	trace []string

	CreateRoundFunc      func(ctx context.Context, db bun.IDB, round rounddomain.Round) error
	GetRoundFunc         func(ctx context.Context, db bun.IDB, roundID uuid.UUID) (rounddomain.Round, error)
	ListClubRoundsFunc   func(ctx context.Context, db bun.IDB, clubID string) ([]rounddomain.Round, error)
	ListPlayerRoundsFunc func(ctx context.Context, db bun.IDB, clubID, playerID string, limit int) ([]rounddomain.Round, error)
	ListCourseRoundsFunc func(ctx context.Context, db bun.IDB, clubID, courseKey string) ([]rounddomain.Round, error)
	ListClubIDsFunc      func(ctx context.Context, db bun.IDB) ([]string, error)
}

func NewFakeRoundRepo() *FakeRoundRepo {
	return &FakeRoundRepo{trace: []string{}}
}

func (f *FakeRoundRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRoundRepo) CreateRound(ctx context.Context, db bun.IDB, round rounddomain.Round) error {
	f.record("CreateRound")
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, db, round)
	}
	return nil
}

func (f *FakeRoundRepo) GetRound(ctx context.Context, db bun.IDB, roundID uuid.UUID) (rounddomain.Round, error) {
	f.record("GetRound")
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, db, roundID)
	}
	return rounddomain.Round{}, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) ListClubRounds(ctx context.Context, db bun.IDB, clubID string) ([]rounddomain.Round, error) {
	f.record("ListClubRounds")
	if f.ListClubRoundsFunc != nil {
		return f.ListClubRoundsFunc(ctx, db, clubID)
	}
	return nil, nil
}

func (f *FakeRoundRepo) ListPlayerRounds(ctx context.Context, db bun.IDB, clubID, playerID string, limit int) ([]rounddomain.Round, error) {
	f.record("ListPlayerRounds")
	if f.ListPlayerRoundsFunc != nil {
		return f.ListPlayerRoundsFunc(ctx, db, clubID, playerID, limit)
	}
	return nil, nil
}

func (f *FakeRoundRepo) ListCourseRounds(ctx context.Context, db bun.IDB, clubID, courseKey string) ([]rounddomain.Round, error) {
	f.record("ListCourseRounds")
	if f.ListCourseRoundsFunc != nil {
		return f.ListCourseRoundsFunc(ctx, db, clubID, courseKey)
	}
	return nil, nil
}

func (f *FakeRoundRepo) ListClubIDs(ctx context.Context, db bun.IDB) ([]string, error) {
	f.record("ListClubIDs")
	if f.ListClubIDsFunc != nil {
		return f.ListClubIDsFunc(ctx, db)
	}
	return nil, nil
}

// --- Accessors for assertions ---

func (f *FakeRoundRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ rounddb.Repository = (*FakeRoundRepo)(nil)
