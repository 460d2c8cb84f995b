package roundhandlers

import (
	"context"

	roundservice "github.com/Black-And-White-Club/fairway/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	"github.com/google/uuid"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	SubmitRoundFn      func(ctx context.Context, sub rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error)
	ImportScorecardFn  func(ctx context.Context, req roundservice.ImportRequest) (results.OperationResult[rounddomain.Round, error], error)
	GetRoundFn         func(ctx context.Context, clubID string, roundID uuid.UUID) (rounddomain.Round, error)
	ListPlayerRoundsFn func(ctx context.Context, clubID, playerID string, limit int) ([]rounddomain.Round, error)
}

func NewFakeService() *FakeService {
	return &FakeService{trace: []string{}}
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeService) SubmitRound(ctx context.Context, sub rounddomain.RoundSubmission) (results.OperationResult[rounddomain.Round, error], error) {
	f.record("SubmitRound")
	if f.SubmitRoundFn != nil {
		return f.SubmitRoundFn(ctx, sub)
	}
	return results.OperationResult[rounddomain.Round, error]{}, nil
}

func (f *FakeService) ImportScorecard(ctx context.Context, req roundservice.ImportRequest) (results.OperationResult[rounddomain.Round, error], error) {
	f.record("ImportScorecard")
	if f.ImportScorecardFn != nil {
		return f.ImportScorecardFn(ctx, req)
	}
	return results.OperationResult[rounddomain.Round, error]{}, nil
}

func (f *FakeService) GetRound(ctx context.Context, clubID string, roundID uuid.UUID) (rounddomain.Round, error) {
	f.record("GetRound")
	if f.GetRoundFn != nil {
		return f.GetRoundFn(ctx, clubID, roundID)
	}
	return rounddomain.Round{}, roundservice.ErrRoundNotFound
}

func (f *FakeService) ListPlayerRounds(ctx context.Context, clubID, playerID string, limit int) ([]rounddomain.Round, error) {
	f.record("ListPlayerRounds")
	if f.ListPlayerRoundsFn != nil {
		return f.ListPlayerRoundsFn(ctx, clubID, playerID, limit)
	}
	return nil, nil
}

var _ roundservice.Service = (*FakeService)(nil)
