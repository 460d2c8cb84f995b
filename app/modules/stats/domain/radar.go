package statsdomain

import (
	"fmt"
	"math"
)

// Deviation score bounds.
const (
	DeviationMin  = 20.0
	DeviationMid  = 50.0
	DeviationMax  = 80.0
	deviationStep = 10.0
)

// RadarChartData is one axis of a player's radar chart.
type RadarChartData struct {
	Category string  `json:"category"`
	Key      string  `json:"key"`
	Value    float64 `json:"value"`
	Max      float64 `json:"max"`
}

var (
	DefaultAxes  = []string{KeyGross, KeyPutts, KeyGIR, KeyFairwayKeep, KeyScramble}
	ExtendedAxes = []string{
		KeyGross, KeyPutts, KeyGIR, KeyFairwayKeep, KeyScramble,
		KeyBounceBack, KeyBogeyAvoid, KeyThreePuttAvoid, KeyOnePutt,
	}
)

// DeviationScore maps value onto a 50-centred scale where one standard
// deviation is worth 10 points, clamped to [20, 80]. A zero deviation maps
// everyone to 50.
func DeviationScore(value, mean, stddev float64, lowerIsBetter bool) float64 {
	if stddev == 0 || math.IsNaN(stddev) {
		return DeviationMid
	}
	z := (value - mean) / stddev
	if lowerIsBetter {
		z = -z
	}
	return min(max(z*deviationStep+DeviationMid, DeviationMin), DeviationMax)
}

// populationStats returns the mean and population standard deviation.
func populationStats(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(len(values)))
}

// Radar projects one player onto the given axes relative to everyone in
// stats. An axis the player has no value for sits at the midpoint.
func Radar(stats []MemberStats, playerID string, axes []string) ([]RadarChartData, error) {
	if len(axes) == 0 {
		axes = DefaultAxes
	}

	idx := -1
	for i, s := range stats {
		if s.PlayerID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}

	out := make([]RadarChartData, 0, len(axes))
	for _, key := range axes {
		def, ok := Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, key)
		}

		point := RadarChartData{Category: def.Label, Key: def.Key, Value: DeviationMid, Max: DeviationMax}
		if v, ok := def.Value(stats[idx]); ok {
			rows := eligible(def, stats)
			values := make([]float64, len(rows))
			for i, r := range rows {
				values[i] = r.value
			}
			mean, sd := populationStats(values)
			point.Value = DeviationScore(v, mean, sd, def.LowerIsBetter)
		}
		out = append(out, point)
	}
	return out, nil
}
