package statsservice

import (
	"context"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/Black-And-White-Club/fairway/app/shared/results"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
	"github.com/uptrace/bun"
)

// RoundReader is the slice of the round repository the stats module reads.
type RoundReader interface {
	ListClubRounds(ctx context.Context, db bun.IDB, clubID string) ([]rounddomain.Round, error)
	ListCourseRounds(ctx context.Context, db bun.IDB, clubID, courseKey string) ([]rounddomain.Round, error)
	ListClubIDs(ctx context.Context, db bun.IDB) ([]string, error)
}

// Service answers statistics queries for one club at a time. Unknown
// metrics, players without rounds and metrics a player has no value for are
// failure results; errors mean the rounds could not be read.
type Service interface {
	Metrics() []statsdomain.MetricDefinition

	MemberStats(ctx context.Context, clubID string) (results.OperationResult[[]statsdomain.MemberStats, error], error)
	PlayerStats(ctx context.Context, clubID, playerID string) (results.OperationResult[statsdomain.MemberStats, error], error)
	Rankings(ctx context.Context, clubID, metric string) (results.OperationResult[Ranking, error], error)
	Compare(ctx context.Context, clubID, playerID, metric string) (results.OperationResult[statsdomain.Comparison, error], error)
	Radar(ctx context.Context, clubID, playerID string, axes []string) (results.OperationResult[[]statsdomain.RadarChartData, error], error)
	Distance(ctx context.Context, clubID, playerID string) (results.OperationResult[statsdomain.DistanceProfile, error], error)
	CourseStats(ctx context.Context, clubID, course string) (results.OperationResult[statsdomain.CourseStats, error], error)

	RadarChart(ctx context.Context, clubID, playerID string, axes []string) ([]byte, error)
	DistanceChart(ctx context.Context, clubID, playerID string, kind DistanceKind) ([]byte, error)
	ExportWorkbook(ctx context.Context, clubID string) ([]byte, error)

	Digest(ctx context.Context, clubID string) (statsevents.DigestGeneratedPayloadV1, error)
	ClubIDs(ctx context.Context) ([]string, error)
}

// Ranking is a metric leaderboard plus the group average it is judged
// against.
type Ranking struct {
	Metric       statsdomain.MetricDefinition `json:"metric"`
	Rows         []statsdomain.RankedRow      `json:"rows"`
	GroupAverage float64                      `json:"group_average"`
	Eligible     int                          `json:"eligible"`
}

// DistanceKind selects the bucket set of a distance chart.
type DistanceKind string

const (
	DistancePutting  DistanceKind = "putting"
	DistanceApproach DistanceKind = "approach"
)
