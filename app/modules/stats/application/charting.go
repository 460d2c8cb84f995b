package statsservice

import (
	"bytes"
	"context"
	"fmt"

	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colours of rendered charts.
type ChartPalette struct {
	Background drawing.Color
	Bar        drawing.Color
	Accent     drawing.Color
	TextColor  drawing.Color
}

// DefaultPalette is a dark green background with gold accents.
func DefaultPalette() ChartPalette {
	return ChartPalette{
		Background: drawing.ColorFromHex("0f1f17"),
		Bar:        drawing.ColorFromHex("2e7d4f"),
		Accent:     drawing.ColorFromHex("d4a72c"),
		TextColor:  drawing.ColorFromHex("e8efe9"),
	}
}

// RadarChart renders a member's deviation scores as a bar chart on the
// fixed 20..80 scale.
func (s *StatsService) RadarChart(ctx context.Context, clubID, playerID string, axes []string) ([]byte, error) {
	data, err := unwrap(s.Radar(ctx, clubID, playerID, axes))
	if err != nil {
		return nil, err
	}
	return renderRadar(data, s.palette)
}

// DistanceChart renders one bucket set of a member's distance profile as
// success rates.
func (s *StatsService) DistanceChart(ctx context.Context, clubID, playerID string, kind DistanceKind) ([]byte, error) {
	if kind != DistancePutting && kind != DistanceApproach {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDistanceChart, kind)
	}
	profile, err := unwrap(s.Distance(ctx, clubID, playerID))
	if err != nil {
		return nil, err
	}
	buckets, title := profile.Putting, "Putts holed by distance (%)"
	if kind == DistanceApproach {
		buckets, title = profile.Approach, "Greens hit by approach distance (%)"
	}
	return renderBuckets(buckets, title, s.palette)
}

func renderRadar(data []statsdomain.RadarChartData, palette ChartPalette) ([]byte, error) {
	if len(data) == 0 {
		return renderNoDataPlaceholder("No stats yet", palette)
	}
	bars := make([]chart.Value, len(data))
	for i, d := range data {
		bars[i] = chart.Value{Label: d.Category, Value: d.Value, Style: barStyle(palette, d.Value >= statsdomain.DeviationMid)}
	}
	return renderBars(bars, "Deviation score", statsdomain.DeviationMin, statsdomain.DeviationMax, palette)
}

func renderBuckets(buckets []statsdomain.DistanceBucket, title string, palette ChartPalette) ([]byte, error) {
	if len(buckets) == 0 {
		return renderNoDataPlaceholder("No shot detail recorded", palette)
	}
	bars := make([]chart.Value, len(buckets))
	for i, b := range buckets {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%s (%d)", b.Label, b.Attempts),
			Value: b.Rate,
			Style: barStyle(palette, true),
		}
	}
	return renderBars(bars, title, 0, 100, palette)
}

func barStyle(palette ChartPalette, strong bool) chart.Style {
	fill := palette.Bar
	if strong {
		fill = palette.Accent
	}
	return chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1}
}

func renderBars(bars []chart.Value, title string, lo, hi float64, palette ChartPalette) ([]byte, error) {
	graph := chart.BarChart{
		Title:      title,
		TitleStyle: chart.Style{FontColor: palette.TextColor},
		Width:      800,
		Height:     400,
		BarWidth:   60,
		Background: chart.Style{
			FillColor: palette.Background,
			Padding:   chart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		XAxis: chart.Style{FontColor: palette.TextColor},
		YAxis: chart.YAxis{
			Style: chart.Style{FontColor: palette.TextColor},
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buffer.Bytes(), nil
}

func renderNoDataPlaceholder(msg string, palette ChartPalette) ([]byte, error) {
	const (
		width  = 400
		height = 200
	)

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		// Render needs one visible series with a non-zero x range; draw it
		// transparent so only the message shows.
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeColor: chart.ColorTransparent,
					FillColor:   chart.ColorTransparent,
				},
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
			},
		},
		XAxis:          chart.XAxis{Style: chart.Style{Hidden: true}},
		YAxis:          chart.YAxis{Style: chart.Style{Hidden: true}},
		YAxisSecondary: chart.YAxis{Style: chart.Style{Hidden: true}},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFont(chartDefaults.GetFont())
				r.SetFontColor(palette.TextColor)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render placeholder: %w", err)
	}
	return buffer.Bytes(), nil
}
