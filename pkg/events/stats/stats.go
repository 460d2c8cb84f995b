// Package statsevents defines the topics and payloads of the stats module.
package statsevents

import (
	"time"

	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
)

const (
	MemberStatsRequestedV1 = "stats.member.requested.v1"
	MemberStatsRetrievedV1 = "stats.member.retrieved.v1"
	RankingRequestedV1     = "stats.ranking.requested.v1"
	RankingRetrievedV1     = "stats.ranking.retrieved.v1"
	StatsRequestFailedV1   = "stats.request.failed.v1"
	DigestGeneratedV1      = "stats.digest.generated.v1"
)

// MemberStatsRequestedPayloadV1 asks for a club's member statistics. An
// empty PlayerID means every member.
type MemberStatsRequestedPayloadV1 struct {
	ClubID   string `json:"club_id"`
	PlayerID string `json:"player_id,omitempty"`
}

type MemberStatsRetrievedPayloadV1 struct {
	ClubID  string                    `json:"club_id"`
	Members []statsdomain.MemberStats `json:"members"`
}

type RankingRequestedPayloadV1 struct {
	ClubID string `json:"club_id"`
	Metric string `json:"metric"`
}

type RankingRetrievedPayloadV1 struct {
	ClubID string                  `json:"club_id"`
	Metric string                  `json:"metric"`
	Label  string                  `json:"label"`
	Rows   []statsdomain.RankedRow `json:"rows"`
}

type StatsRequestFailedPayloadV1 struct {
	ClubID string `json:"club_id"`
	Reason string `json:"reason"`
}

// DigestLeader is the best member on one headline metric.
type DigestLeader struct {
	Metric   string  `json:"metric"`
	Label    string  `json:"label"`
	PlayerID string  `json:"player_id"`
	Value    float64 `json:"value"`
	Display  string  `json:"display"`
}

// DigestGeneratedPayloadV1 is the periodic club summary.
type DigestGeneratedPayloadV1 struct {
	ClubID      string         `json:"club_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Members     int            `json:"members"`
	Leaders     []DigestLeader `json:"leaders"`
}
