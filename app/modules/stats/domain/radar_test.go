package statsdomain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDeviationScore(t *testing.T) {
	tests := []struct {
		name          string
		value         float64
		mean, sd      float64
		lowerIsBetter bool
		want          float64
	}{
		{name: "at the mean", value: 50, mean: 50, sd: 5, want: 50},
		{name: "one sd above", value: 55, mean: 50, sd: 5, want: 60},
		{name: "one sd above, lower is better", value: 55, mean: 50, sd: 5, lowerIsBetter: true, want: 40},
		{name: "ten sd above clamps", value: 100, mean: 50, sd: 5, want: 80},
		{name: "ten sd below clamps", value: 0, mean: 50, sd: 5, want: 20},
		{name: "zero sd", value: 90, mean: 50, sd: 0, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeviationScore(tt.value, tt.mean, tt.sd, tt.lowerIsBetter); got != tt.want {
				t.Fatalf("DeviationScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRadarClampsOutlier(t *testing.T) {
	stats := make([]MemberStats, 0, 150)
	for i := range 149 {
		stats = append(stats, MemberStats{PlayerID: fmt.Sprintf("p%d", i), GIR: 40})
	}
	stats = append(stats, MemberStats{PlayerID: "outlier", GIR: 100})

	points, err := Radar(stats, "outlier", []string{KeyGIR})
	if err != nil {
		t.Fatalf("Radar: %v", err)
	}
	if points[0].Value != DeviationMax {
		t.Fatalf("outlier value = %v, want %v", points[0].Value, DeviationMax)
	}

	points, err = Radar(stats, "p0", []string{KeyGIR})
	if err != nil {
		t.Fatalf("Radar: %v", err)
	}
	approx(t, "typical player", points[0].Value, 49.18)
}

func TestRadarAxes(t *testing.T) {
	stats := []MemberStats{
		{PlayerID: "a", Gross: 70, Putts: 30, GIR: 60, FairwayKeep: 50, Scramble: 40},
		{PlayerID: "b", Gross: 80, Putts: 34, GIR: 40, FairwayKeep: 50, Scramble: 20},
	}

	points, err := Radar(stats, "a", nil)
	if err != nil {
		t.Fatalf("Radar: %v", err)
	}
	if len(points) != len(DefaultAxes) {
		t.Fatalf("got %d axes, want %d", len(points), len(DefaultAxes))
	}

	byKey := make(map[string]RadarChartData)
	for _, p := range points {
		if p.Max != DeviationMax {
			t.Fatalf("axis %s has max %v", p.Key, p.Max)
		}
		byKey[p.Key] = p
	}
	// Two players one sd either side of the mean.
	approx(t, "gross", byKey[KeyGross].Value, 60)
	approx(t, "putts", byKey[KeyPutts].Value, 60)
	approx(t, "gir", byKey[KeyGIR].Value, 60)
	approx(t, "fairway_keep", byKey[KeyFairwayKeep].Value, 50)

	extended, err := Radar(stats, "b", ExtendedAxes)
	if err != nil {
		t.Fatalf("Radar: %v", err)
	}
	if len(extended) != len(ExtendedAxes) {
		t.Fatalf("got %d extended axes, want %d", len(extended), len(ExtendedAxes))
	}
}

func TestRadarMissingValueSitsAtMidpoint(t *testing.T) {
	stats := []MemberStats{
		{PlayerID: "a", SandSave: floatPtr(80)},
		{PlayerID: "b", SandSave: floatPtr(20)},
		{PlayerID: "c"},
	}

	points, err := Radar(stats, "c", []string{KeySandSave})
	if err != nil {
		t.Fatalf("Radar: %v", err)
	}
	if points[0].Value != DeviationMid {
		t.Fatalf("value = %v, want %v", points[0].Value, DeviationMid)
	}
}

func TestRadarErrors(t *testing.T) {
	stats := []MemberStats{{PlayerID: "a"}}
	if _, err := Radar(stats, "missing", nil); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
	if _, err := Radar(stats, "a", []string{"handicap"}); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
}
