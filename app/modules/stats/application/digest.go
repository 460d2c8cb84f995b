package statsservice

import (
	"context"

	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	statsevents "github.com/Black-And-White-Club/fairway/pkg/events/stats"
)

// Digest summarises a club: how many members have rounds and who leads each
// of the default radar metrics. Metrics nobody has a value for are skipped.
func (s *StatsService) Digest(ctx context.Context, clubID string) (statsevents.DigestGeneratedPayloadV1, error) {
	stats, err := unwrap(s.MemberStats(ctx, clubID))
	if err != nil {
		return statsevents.DigestGeneratedPayloadV1{}, err
	}

	digest := statsevents.DigestGeneratedPayloadV1{
		ClubID:      clubID,
		GeneratedAt: s.now().UTC(),
		Members:     len(stats),
		Leaders:     []statsevents.DigestLeader{},
	}
	for _, key := range statsdomain.DefaultAxes {
		rows, err := statsdomain.Rank(stats, key)
		if err != nil {
			return statsevents.DigestGeneratedPayloadV1{}, err
		}
		if len(rows) == 0 {
			continue
		}
		def, _ := statsdomain.Lookup(key)
		digest.Leaders = append(digest.Leaders, statsevents.DigestLeader{
			Metric:   key,
			Label:    def.Label,
			PlayerID: rows[0].PlayerID,
			Value:    rows[0].Value,
			Display:  rows[0].Display,
		})
	}
	return digest, nil
}
