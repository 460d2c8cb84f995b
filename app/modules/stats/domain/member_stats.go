package statsdomain

import (
	"slices"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
)

// MemberStats is the derived performance summary of one player. Rates are
// percentages in [0, 100]. SandSave and DrivingDistance are nil when the
// player never had a measurable opportunity.
type MemberStats struct {
	PlayerID     string `json:"player_id"`
	RoundsPlayed int    `json:"rounds_played"`
	HolesPlayed  int    `json:"holes_played"`

	AvgScore float64 `json:"avg_score"`
	Gross    float64 `json:"gross"`
	ToPar    float64 `json:"to_par"`
	Putts    float64 `json:"putts"`

	GIR         float64 `json:"gir"`
	FairwayKeep float64 `json:"fairway_keep"`
	Scramble    float64 `json:"scramble"`

	Par3Avg          float64 `json:"par3_avg"`
	Par4Avg          float64 `json:"par4_avg"`
	Par5Avg          float64 `json:"par5_avg"`
	BirdieRate       float64 `json:"birdie_rate"`
	BogeyAvoid       float64 `json:"bogey_avoid"`
	DoubleBogeyAvoid float64 `json:"double_bogey_avoid"`
	BounceBack       float64 `json:"bounce_back"`

	PuttsPerGIR    float64 `json:"putts_per_gir"`
	ThreePuttAvoid float64 `json:"three_putt_avoid"`
	OnePutt        float64 `json:"one_putt"`

	GIRFromFairway  float64 `json:"gir_fairway"`
	GIRFromRough    float64 `json:"gir_rough"`
	OBPerRound      float64 `json:"ob_per_round"`
	PenaltyPerRound float64 `json:"penalty_per_round"`
	BunkerPerRound  float64 `json:"bunker_per_round"`

	SandSave        *float64 `json:"sand_save"`
	DrivingDistance *float64 `json:"driving_distance"`
}

// MemberStats computes one MemberStats per player over that player's most
// recent rounds (Thresholds.RecentRounds). Players appear in the order they
// first occur in rounds.
func (c *Calculator) MemberStats(rounds []rounddomain.Round) []MemberStats {
	return c.memberStats(rounds, c.thresholds.RecentRounds)
}

// MemberStatsAll is MemberStats without the recent-rounds window.
func (c *Calculator) MemberStatsAll(rounds []rounddomain.Round) []MemberStats {
	return c.memberStats(rounds, 0)
}

// PlayerStats computes the windowed stats of a single player.
func (c *Calculator) PlayerStats(rounds []rounddomain.Round, playerID string) (MemberStats, bool) {
	for _, s := range c.MemberStats(rounds) {
		if s.PlayerID == playerID {
			return s, true
		}
	}
	return MemberStats{}, false
}

// RecentRounds returns the rounds of playerID that feed their MemberStats,
// most recent first.
func (c *Calculator) RecentRounds(rounds []rounddomain.Round, playerID string) []rounddomain.Round {
	_, byPlayer := groupByPlayer(rounds)
	return recent(byPlayer[playerID], c.thresholds.RecentRounds)
}

func (c *Calculator) memberStats(rounds []rounddomain.Round, window int) []MemberStats {
	order, byPlayer := groupByPlayer(rounds)

	out := make([]MemberStats, 0, len(order))
	for _, playerID := range order {
		var t tally
		for _, r := range recent(byPlayer[playerID], window) {
			t.addRound(r, c.thresholds)
		}
		if t.rounds == 0 {
			continue
		}
		out = append(out, t.memberStats(playerID))
	}
	return out
}

func groupByPlayer(rounds []rounddomain.Round) ([]string, map[string][]rounddomain.Round) {
	var order []string
	byPlayer := make(map[string][]rounddomain.Round)
	for _, r := range rounds {
		if r.PlayerID == "" {
			continue
		}
		if _, seen := byPlayer[r.PlayerID]; !seen {
			order = append(order, r.PlayerID)
		}
		byPlayer[r.PlayerID] = append(byPlayer[r.PlayerID], r)
	}
	return order, byPlayer
}

// recent orders rounds most-recent-first and keeps at most window of them.
// Rounds played on the same date keep their input order. A window of zero
// keeps everything.
func recent(rounds []rounddomain.Round, window int) []rounddomain.Round {
	sorted := slices.Clone(rounds)
	slices.SortStableFunc(sorted, func(a, b rounddomain.Round) int {
		return b.PlayedOn.Compare(a.PlayedOn)
	})
	if window > 0 && len(sorted) > window {
		sorted = sorted[:window]
	}
	return sorted
}
