package statshandlers

import (
	"context"

	statsservice "github.com/Black-And-White-Club/fairway/app/modules/stats/application"
	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	MemberStatsFn    func(ctx context.Context, clubID string) (results.OperationResult[[]statsdomain.MemberStats, error], error)
	PlayerStatsFn    func(ctx context.Context, clubID, playerID string) (results.OperationResult[statsdomain.MemberStats, error], error)
	RankingsFn       func(ctx context.Context, clubID, metric string) (results.OperationResult[statsservice.Ranking, error], error)
	CompareFn        func(ctx context.Context, clubID, playerID, metric string) (results.OperationResult[statsdomain.Comparison, error], error)
	RadarFn          func(ctx context.Context, clubID, playerID string, axes []string) (results.OperationResult[[]statsdomain.RadarChartData, error], error)
	DistanceFn       func(ctx context.Context, clubID, playerID string) (results.OperationResult[statsdomain.DistanceProfile, error], error)
	CourseStatsFn    func(ctx context.Context, clubID, course string) (results.OperationResult[statsdomain.CourseStats, error], error)
	RadarChartFn     func(ctx context.Context, clubID, playerID string, axes []string) ([]byte, error)
	DistanceChartFn  func(ctx context.Context, clubID, playerID string, kind statsservice.DistanceKind) ([]byte, error)
	ExportWorkbookFn func(ctx context.Context, clubID string) ([]byte, error)
	DigestFn         func(ctx context.Context, clubID string) (statsevents.DigestGeneratedPayloadV1, error)
	ClubIDsFn        func(ctx context.Context) ([]string, error)
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

func (f *FakeService) Metrics() []statsdomain.MetricDefinition {
	f.record("Metrics")
	return statsdomain.Metrics()
}

func (f *FakeService) MemberStats(ctx context.Context, clubID string) (results.OperationResult[[]statsdomain.MemberStats, error], error) {
	f.record("MemberStats")
	if f.MemberStatsFn != nil {
		return f.MemberStatsFn(ctx, clubID)
	}
	return results.OperationResult[[]statsdomain.MemberStats, error]{}, nil
}

func (f *FakeService) PlayerStats(ctx context.Context, clubID, playerID string) (results.OperationResult[statsdomain.MemberStats, error], error) {
	f.record("PlayerStats")
	if f.PlayerStatsFn != nil {
		return f.PlayerStatsFn(ctx, clubID, playerID)
	}
	return results.OperationResult[statsdomain.MemberStats, error]{}, nil
}

func (f *FakeService) Rankings(ctx context.Context, clubID, metric string) (results.OperationResult[statsservice.Ranking, error], error) {
	f.record("Rankings")
	if f.RankingsFn != nil {
		return f.RankingsFn(ctx, clubID, metric)
	}
	return results.OperationResult[statsservice.Ranking, error]{}, nil
}

func (f *FakeService) Compare(ctx context.Context, clubID, playerID, metric string) (results.OperationResult[statsdomain.Comparison, error], error) {
	f.record("Compare")
	if f.CompareFn != nil {
		return f.CompareFn(ctx, clubID, playerID, metric)
	}
	return results.OperationResult[statsdomain.Comparison, error]{}, nil
}

func (f *FakeService) Radar(ctx context.Context, clubID, playerID string, axes []string) (results.OperationResult[[]statsdomain.RadarChartData, error], error) {
	f.record("Radar")
	if f.RadarFn != nil {
		return f.RadarFn(ctx, clubID, playerID, axes)
	}
	return results.OperationResult[[]statsdomain.RadarChartData, error]{}, nil
}

func (f *FakeService) Distance(ctx context.Context, clubID, playerID string) (results.OperationResult[statsdomain.DistanceProfile, error], error) {
	f.record("Distance")
	if f.DistanceFn != nil {
		return f.DistanceFn(ctx, clubID, playerID)
	}
	return results.OperationResult[statsdomain.DistanceProfile, error]{}, nil
}

func (f *FakeService) CourseStats(ctx context.Context, clubID, course string) (results.OperationResult[statsdomain.CourseStats, error], error) {
	f.record("CourseStats")
	if f.CourseStatsFn != nil {
		return f.CourseStatsFn(ctx, clubID, course)
	}
	return results.OperationResult[statsdomain.CourseStats, error]{}, nil
}

func (f *FakeService) RadarChart(ctx context.Context, clubID, playerID string, axes []string) ([]byte, error) {
	f.record("RadarChart")
	if f.RadarChartFn != nil {
		return f.RadarChartFn(ctx, clubID, playerID, axes)
	}
	return nil, nil
}

func (f *FakeService) DistanceChart(ctx context.Context, clubID, playerID string, kind statsservice.DistanceKind) ([]byte, error) {
	f.record("DistanceChart")
	if f.DistanceChartFn != nil {
		return f.DistanceChartFn(ctx, clubID, playerID, kind)
	}
	return nil, nil
}

func (f *FakeService) ExportWorkbook(ctx context.Context, clubID string) ([]byte, error) {
	f.record("ExportWorkbook")
	if f.ExportWorkbookFn != nil {
		return f.ExportWorkbookFn(ctx, clubID)
	}
	return nil, nil
}

func (f *FakeService) Digest(ctx context.Context, clubID string) (statsevents.DigestGeneratedPayloadV1, error) {
	f.record("Digest")
	if f.DigestFn != nil {
		return f.DigestFn(ctx, clubID)
	}
	return statsevents.DigestGeneratedPayloadV1{}, nil
}

func (f *FakeService) ClubIDs(ctx context.Context) ([]string, error) {
	f.record("ClubIDs")
	if f.ClubIDsFn != nil {
		return f.ClubIDsFn(ctx)
	}
	return nil, nil
}

var _ statsservice.Service = (*FakeService)(nil)
