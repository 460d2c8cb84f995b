package statsservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Round Reader
// ------------------------

type FakeRoundReader struct {
	trace []string

	ListClubRoundsFunc   func(ctx context.Context, db bun.IDB, clubID string) ([]rounddomain.Round, error)
	ListCourseRoundsFunc func(ctx context.Context, db bun.IDB, clubID, courseKey string) ([]rounddomain.Round, error)
	ListClubIDsFunc      func(ctx context.Context, db bun.IDB) ([]string, error)
}

func NewFakeRoundReader() *FakeRoundReader {
	return &FakeRoundReader{trace: []string{}}
}

func (f *FakeRoundReader) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeRoundReader) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRoundReader) ListClubRounds(ctx context.Context, db bun.IDB, clubID string) ([]rounddomain.Round, error) {
	f.record("ListClubRounds")
	if f.ListClubRoundsFunc != nil {
		return f.ListClubRoundsFunc(ctx, db, clubID)
	}
	return nil, nil
}

func (f *FakeRoundReader) ListCourseRounds(ctx context.Context, db bun.IDB, clubID, courseKey string) ([]rounddomain.Round, error) {
	f.record("ListCourseRounds")
	if f.ListCourseRoundsFunc != nil {
		return f.ListCourseRoundsFunc(ctx, db, clubID, courseKey)
	}
	return nil, nil
}

func (f *FakeRoundReader) ListClubIDs(ctx context.Context, db bun.IDB) ([]string, error) {
	f.record("ListClubIDs")
	if f.ListClubIDsFunc != nil {
		return f.ListClubIDsFunc(ctx, db)
	}
	return nil, nil
}

var _ RoundReader = (*FakeRoundReader)(nil)
