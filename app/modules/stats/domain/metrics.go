package statsdomain

import (
	"fmt"
	"slices"
)

// MetricGroup buckets metrics for display.
type MetricGroup string

const (
	GroupCore    MetricGroup = "core"
	GroupScoring MetricGroup = "scoring"
	GroupPutting MetricGroup = "putting"
	GroupShot    MetricGroup = "shot"
)

// MetricFormat selects how a value is rendered.
type MetricFormat string

const (
	FormatScore    MetricFormat = "score"
	FormatStrokes  MetricFormat = "strokes"
	FormatPercent  MetricFormat = "percent"
	FormatCount    MetricFormat = "count"
	FormatDistance MetricFormat = "distance"
)

// Metric keys. They match the MemberStats JSON field names.
const (
	KeyRoundsPlayed     = "rounds_played"
	KeyAvgScore         = "avg_score"
	KeyGross            = "gross"
	KeyToPar            = "to_par"
	KeyPutts            = "putts"
	KeyGIR              = "gir"
	KeyFairwayKeep      = "fairway_keep"
	KeyScramble         = "scramble"
	KeyPar3Avg          = "par3_avg"
	KeyPar4Avg          = "par4_avg"
	KeyPar5Avg          = "par5_avg"
	KeyBirdieRate       = "birdie_rate"
	KeyBogeyAvoid       = "bogey_avoid"
	KeyDoubleBogeyAvoid = "double_bogey_avoid"
	KeyBounceBack       = "bounce_back"
	KeyPuttsPerGIR      = "putts_per_gir"
	KeyThreePuttAvoid   = "three_putt_avoid"
	KeyOnePutt          = "one_putt"
	KeyGIRFromFairway   = "gir_fairway"
	KeyGIRFromRough     = "gir_rough"
	KeyOBPerRound       = "ob_per_round"
	KeyPenaltyPerRound  = "penalty_per_round"
	KeyBunkerPerRound   = "bunker_per_round"
	KeySandSave         = "sand_save"
	KeyDrivingDistance  = "driving_distance"
)

// MetricDefinition describes one metric. Value extracts the metric from a
// MemberStats and reports false when the player has no value for it.
type MetricDefinition struct {
	Key            string       `json:"key"`
	Label          string       `json:"label"`
	Group          MetricGroup  `json:"group"`
	Format         MetricFormat `json:"format"`
	LowerIsBetter  bool         `json:"lower_is_better"`
	RequiresDetail bool         `json:"requires_detail"`
	Rankable       bool         `json:"rankable"`

	Value func(MemberStats) (float64, bool) `json:"-"`
}

func always(f func(MemberStats) float64) func(MemberStats) (float64, bool) {
	return func(s MemberStats) (float64, bool) { return f(s), true }
}

func nullable(f func(MemberStats) *float64) func(MemberStats) (float64, bool) {
	return func(s MemberStats) (float64, bool) {
		v := f(s)
		if v == nil {
			return 0, false
		}
		return *v, true
	}
}

var metrics = []MetricDefinition{
	{Key: KeyRoundsPlayed, Label: "Rounds", Group: GroupCore, Format: FormatCount,
		Value: always(func(s MemberStats) float64 { return float64(s.RoundsPlayed) })},
	{Key: KeyGross, Label: "Gross", Group: GroupCore, Format: FormatScore, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.Gross })},
	{Key: KeyToPar, Label: "To par", Group: GroupCore, Format: FormatScore, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.ToPar })},
	{Key: KeyAvgScore, Label: "Avg per hole", Group: GroupCore, Format: FormatStrokes, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.AvgScore })},
	{Key: KeyPutts, Label: "Putts", Group: GroupCore, Format: FormatScore, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.Putts })},
	{Key: KeyGIR, Label: "GIR", Group: GroupCore, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.GIR })},
	{Key: KeyFairwayKeep, Label: "Fairway keep", Group: GroupCore, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.FairwayKeep })},
	{Key: KeyScramble, Label: "Scramble", Group: GroupCore, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.Scramble })},

	{Key: KeyPar3Avg, Label: "Par 3 avg", Group: GroupScoring, Format: FormatStrokes, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.Par3Avg })},
	{Key: KeyPar4Avg, Label: "Par 4 avg", Group: GroupScoring, Format: FormatStrokes, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.Par4Avg })},
	{Key: KeyPar5Avg, Label: "Par 5 avg", Group: GroupScoring, Format: FormatStrokes, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.Par5Avg })},
	{Key: KeyBirdieRate, Label: "Birdie rate", Group: GroupScoring, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.BirdieRate })},
	{Key: KeyBogeyAvoid, Label: "Bogey avoidance", Group: GroupScoring, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.BogeyAvoid })},
	{Key: KeyDoubleBogeyAvoid, Label: "Double bogey avoidance", Group: GroupScoring, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.DoubleBogeyAvoid })},
	{Key: KeyBounceBack, Label: "Bounce back", Group: GroupScoring, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.BounceBack })},

	{Key: KeyPuttsPerGIR, Label: "Putts per GIR", Group: GroupPutting, Format: FormatStrokes, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.PuttsPerGIR })},
	{Key: KeyThreePuttAvoid, Label: "3-putt avoidance", Group: GroupPutting, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.ThreePuttAvoid })},
	{Key: KeyOnePutt, Label: "1-putt rate", Group: GroupPutting, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.OnePutt })},

	{Key: KeyGIRFromFairway, Label: "GIR from fairway", Group: GroupShot, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.GIRFromFairway })},
	{Key: KeyGIRFromRough, Label: "GIR from rough", Group: GroupShot, Format: FormatPercent, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.GIRFromRough })},
	{Key: KeyOBPerRound, Label: "OB per round", Group: GroupShot, Format: FormatCount, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.OBPerRound })},
	{Key: KeyPenaltyPerRound, Label: "Penalties per round", Group: GroupShot, Format: FormatCount, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.PenaltyPerRound })},
	{Key: KeyBunkerPerRound, Label: "Bunkers per round", Group: GroupShot, Format: FormatCount, LowerIsBetter: true, Rankable: true,
		Value: always(func(s MemberStats) float64 { return s.BunkerPerRound })},
	{Key: KeySandSave, Label: "Sand save", Group: GroupShot, Format: FormatPercent, RequiresDetail: true, Rankable: true,
		Value: nullable(func(s MemberStats) *float64 { return s.SandSave })},
	{Key: KeyDrivingDistance, Label: "Driving distance", Group: GroupShot, Format: FormatDistance, RequiresDetail: true, Rankable: true,
		Value: nullable(func(s MemberStats) *float64 { return s.DrivingDistance })},
}

var metricIndex = func() map[string]int {
	idx := make(map[string]int, len(metrics))
	for i, m := range metrics {
		idx[m.Key] = i
	}
	return idx
}()

// Metrics returns the metric table in display order.
func Metrics() []MetricDefinition { return slices.Clone(metrics) }

// Lookup finds a metric by key.
func Lookup(key string) (MetricDefinition, bool) {
	i, ok := metricIndex[key]
	if !ok {
		return MetricDefinition{}, false
	}
	return metrics[i], true
}

// RankableMetrics returns the metrics a leaderboard can be built for.
func RankableMetrics() []MetricDefinition {
	var out []MetricDefinition
	for _, m := range metrics {
		if m.Rankable {
			out = append(out, m)
		}
	}
	return out
}

// MetricsByGroup returns the metrics of one group in display order.
func MetricsByGroup(group MetricGroup) []MetricDefinition {
	var out []MetricDefinition
	for _, m := range metrics {
		if m.Group == group {
			out = append(out, m)
		}
	}
	return out
}

// FormatValue renders v according to the metric's format.
func FormatValue(def MetricDefinition, v float64) string {
	switch def.Format {
	case FormatScore:
		return fmt.Sprintf("%.1f", v)
	case FormatStrokes:
		return fmt.Sprintf("%.2f", v)
	case FormatPercent:
		return fmt.Sprintf("%.1f%%", v)
	case FormatCount:
		return fmt.Sprintf("%.1f", v)
	case FormatDistance:
		return fmt.Sprintf("%.0f yd", v)
	default:
		return fmt.Sprintf("%g", v)
	}
}

// Display renders the metric for one player, "-" when there is no value.
func Display(def MetricDefinition, s MemberStats) string {
	v, ok := def.Value(s)
	if !ok {
		return "-"
	}
	return FormatValue(def, v)
}
