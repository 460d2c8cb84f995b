package statsdomain

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// RankedRow is one line of a metric leaderboard.
type RankedRow struct {
	Position int     `json:"position"`
	PlayerID string  `json:"player_id"`
	Value    float64 `json:"value"`
	Display  string  `json:"display"`
}

// Signal tells whether a player compares well against the group.
type Signal string

const (
	SignalGood Signal = "good"
	SignalBad  Signal = "bad"
	SignalEven Signal = "even"
)

// Comparison is one player's value against the group average.
type Comparison struct {
	Key            string  `json:"key"`
	PlayerID       string  `json:"player_id"`
	PlayerValue    float64 `json:"player_value"`
	GroupAverage   float64 `json:"group_average"`
	Difference     float64 `json:"difference"`
	Signal         Signal  `json:"signal"`
	PlayerDisplay  string  `json:"player_display"`
	AverageDisplay string  `json:"average_display"`
}

type scored struct {
	playerID string
	value    float64
}

func lookupRankable(key string) (MetricDefinition, error) {
	def, ok := Lookup(key)
	if !ok {
		return MetricDefinition{}, fmt.Errorf("%w: %q", ErrUnknownMetric, key)
	}
	if !def.Rankable {
		return MetricDefinition{}, fmt.Errorf("%w: %q", ErrMetricNotRankable, key)
	}
	return def, nil
}

// eligible collects the players that have a value for def, in input order.
func eligible(def MetricDefinition, stats []MemberStats) []scored {
	out := make([]scored, 0, len(stats))
	for _, s := range stats {
		if v, ok := def.Value(s); ok {
			out = append(out, scored{playerID: s.PlayerID, value: v})
		}
	}
	return out
}

// Rank orders players by the metric, best first. Players without a value are
// left out. Ties keep their input order.
func Rank(stats []MemberStats, key string) ([]RankedRow, error) {
	def, err := lookupRankable(key)
	if err != nil {
		return nil, err
	}

	rows := eligible(def, stats)
	slices.SortStableFunc(rows, func(a, b scored) int {
		if def.LowerIsBetter {
			return cmp.Compare(a.value, b.value)
		}
		return cmp.Compare(b.value, a.value)
	})

	out := make([]RankedRow, len(rows))
	for i, r := range rows {
		out[i] = RankedRow{
			Position: i + 1,
			PlayerID: r.playerID,
			Value:    r.value,
			Display:  FormatValue(def, r.value),
		}
	}
	return out, nil
}

// GroupAverage is the arithmetic mean of the metric over eligible players.
// The count of eligible players is returned alongside.
func GroupAverage(stats []MemberStats, key string) (float64, int, error) {
	def, ok := Lookup(key)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownMetric, key)
	}
	rows := eligible(def, stats)
	if len(rows) == 0 {
		return 0, 0, nil
	}
	sum := 0.0
	for _, r := range rows {
		sum += r.value
	}
	return sum / float64(len(rows)), len(rows), nil
}

// Compare sets one player's value against the group average.
func Compare(stats []MemberStats, key, playerID string) (Comparison, error) {
	def, ok := Lookup(key)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %q", ErrUnknownMetric, key)
	}

	var (
		player MemberStats
		found  bool
	)
	for _, s := range stats {
		if s.PlayerID == playerID {
			player, found = s, true
			break
		}
	}
	if !found {
		return Comparison{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	value, ok := def.Value(player)
	if !ok {
		return Comparison{}, fmt.Errorf("%w: %s %s", ErrNoValue, playerID, key)
	}

	avg, _, err := GroupAverage(stats, key)
	if err != nil {
		return Comparison{}, err
	}

	diff := value - avg
	return Comparison{
		Key:            key,
		PlayerID:       playerID,
		PlayerValue:    value,
		GroupAverage:   avg,
		Difference:     diff,
		Signal:         signalFor(def, diff),
		PlayerDisplay:  FormatValue(def, value),
		AverageDisplay: FormatValue(def, avg),
	}, nil
}

const evenTolerance = 1e-9

func signalFor(def MetricDefinition, diff float64) Signal {
	if math.Abs(diff) < evenTolerance {
		return SignalEven
	}
	better := diff > 0
	if def.LowerIsBetter {
		better = diff < 0
	}
	if better {
		return SignalGood
	}
	return SignalBad
}
