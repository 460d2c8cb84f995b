package statsservice

import (
	"context"
	"fmt"
	"strings"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
)

// Metrics returns the metric table.
func (s *StatsService) Metrics() []statsdomain.MetricDefinition {
	return statsdomain.Metrics()
}

// MemberStats returns the windowed stats of every member with rounds.
func (s *StatsService) MemberStats(ctx context.Context, clubID string) (results.OperationResult[[]statsdomain.MemberStats, error], error) {
	return withTelemetry(s, ctx, "MemberStats", clubID, func(ctx context.Context) (results.OperationResult[[]statsdomain.MemberStats, error], error) {
		_, stats, err := s.clubStats(ctx, clubID)
		return settle(stats, err)
	})
}

// PlayerStats returns one member's windowed stats.
func (s *StatsService) PlayerStats(ctx context.Context, clubID, playerID string) (results.OperationResult[statsdomain.MemberStats, error], error) {
	return withTelemetry(s, ctx, "PlayerStats", clubID, func(ctx context.Context) (results.OperationResult[statsdomain.MemberStats, error], error) {
		rounds, err := s.clubRounds(ctx, clubID)
		if err != nil {
			return settle(statsdomain.MemberStats{}, err)
		}
		stats, ok := s.calc.PlayerStats(rounds, playerID)
		if !ok {
			return settle(stats, fmt.Errorf("%w: %s", statsdomain.ErrPlayerNotFound, playerID))
		}
		return settle(stats, nil)
	})
}

// Rankings orders the club's members by one metric.
func (s *StatsService) Rankings(ctx context.Context, clubID, metric string) (results.OperationResult[Ranking, error], error) {
	return withTelemetry(s, ctx, "Rankings", clubID, func(ctx context.Context) (results.OperationResult[Ranking, error], error) {
		_, stats, err := s.clubStats(ctx, clubID)
		if err != nil {
			return settle(Ranking{}, err)
		}
		return settle(rank(stats, metric))
	})
}

func rank(stats []statsdomain.MemberStats, metric string) (Ranking, error) {
	rows, err := statsdomain.Rank(stats, metric)
	if err != nil {
		return Ranking{}, err
	}
	avg, n, err := statsdomain.GroupAverage(stats, metric)
	if err != nil {
		return Ranking{}, err
	}
	def, _ := statsdomain.Lookup(metric)
	return Ranking{Metric: def, Rows: rows, GroupAverage: avg, Eligible: n}, nil
}

// Compare sets one member against the club average on a metric.
func (s *StatsService) Compare(ctx context.Context, clubID, playerID, metric string) (results.OperationResult[statsdomain.Comparison, error], error) {
	return withTelemetry(s, ctx, "Compare", clubID, func(ctx context.Context) (results.OperationResult[statsdomain.Comparison, error], error) {
		_, stats, err := s.clubStats(ctx, clubID)
		if err != nil {
			return settle(statsdomain.Comparison{}, err)
		}
		return settle(statsdomain.Compare(stats, metric, playerID))
	})
}

// Radar projects one member onto the given axes. No axes means the default
// five.
func (s *StatsService) Radar(ctx context.Context, clubID, playerID string, axes []string) (results.OperationResult[[]statsdomain.RadarChartData, error], error) {
	return withTelemetry(s, ctx, "Radar", clubID, func(ctx context.Context) (results.OperationResult[[]statsdomain.RadarChartData, error], error) {
		_, stats, err := s.clubStats(ctx, clubID)
		if err != nil {
			return settle[[]statsdomain.RadarChartData](nil, err)
		}
		return settle(statsdomain.Radar(stats, playerID, axes))
	})
}

// Distance buckets the member's putts and approaches over the same recent
// rounds their stats use.
func (s *StatsService) Distance(ctx context.Context, clubID, playerID string) (results.OperationResult[statsdomain.DistanceProfile, error], error) {
	return withTelemetry(s, ctx, "Distance", clubID, func(ctx context.Context) (results.OperationResult[statsdomain.DistanceProfile, error], error) {
		rounds, err := s.clubRounds(ctx, clubID)
		if err != nil {
			return settle(statsdomain.DistanceProfile{}, err)
		}
		mine := s.calc.RecentRounds(rounds, playerID)
		if len(mine) == 0 {
			return settle(statsdomain.DistanceProfile{}, fmt.Errorf("%w: %s", statsdomain.ErrPlayerNotFound, playerID))
		}
		return settle(statsdomain.Distance(mine), nil)
	})
}

// CourseStats summarises every round the club played on one course. The
// course is a course id or a course name.
func (s *StatsService) CourseStats(ctx context.Context, clubID, course string) (results.OperationResult[statsdomain.CourseStats, error], error) {
	return withTelemetry(s, ctx, "CourseStats", clubID, func(ctx context.Context) (results.OperationResult[statsdomain.CourseStats, error], error) {
		if strings.TrimSpace(clubID) == "" {
			return settle(statsdomain.CourseStats{}, ErrMissingClub)
		}
		key := rounddomain.NormalizeCourseName(course)
		if key == "" {
			return settle(statsdomain.CourseStats{}, ErrMissingCourse)
		}
		rounds, err := s.rounds.ListCourseRounds(ctx, nil, clubID, key)
		if err != nil {
			return settle(statsdomain.CourseStats{}, fmt.Errorf("failed to list course rounds: %w", err))
		}
		return settle(s.calc.CourseStats(rounds, key), nil)
	})
}

// ClubIDs lists every club with at least one round.
func (s *StatsService) ClubIDs(ctx context.Context) ([]string, error) {
	ids, err := s.rounds.ListClubIDs(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	return ids, nil
}
