package statsdomain

import (
	"cmp"
	"slices"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
)

// HoleBreakdown summarises how a course hole plays across every round on it.
type HoleBreakdown struct {
	Number         int     `json:"number"`
	Par            int     `json:"par"`
	Plays          int     `json:"plays"`
	AvgStrokes     float64 `json:"avg_strokes"`
	AvgToPar       float64 `json:"avg_to_par"`
	GIRRate        float64 `json:"gir_rate"`
	BirdieOrBetter int     `json:"birdie_or_better"`
	Pars           int     `json:"pars"`
	BogeyOrWorse   int     `json:"bogey_or_worse"`
}

// PinBreakdown summarises scoring against one pin placement.
type PinBreakdown struct {
	Pin      rounddomain.PinPosition `json:"pin"`
	Plays    int                     `json:"plays"`
	AvgToPar float64                 `json:"avg_to_par"`
	GIRRate  float64                 `json:"gir_rate"`
	AvgPutts float64                 `json:"avg_putts"`
}

// CourseStats is the course-scoped view over all rounds played on one course.
type CourseStats struct {
	CourseKey    string          `json:"course_key"`
	Rounds       int             `json:"rounds"`
	Members      []MemberStats   `json:"members"`
	Holes        []HoleBreakdown `json:"holes"`
	Pins         []PinBreakdown  `json:"pins"`
	HardestHoles []int           `json:"hardest_holes"`
	Distance     DistanceProfile `json:"distance"`
}

type holeAcc struct {
	par, plays, strokes, toPar, gir int
	birdies, pars, bogeys           int
}

type pinAcc struct {
	plays, toPar, gir, putts int
}

// CourseStats computes statistics over the rounds whose CourseKey matches
// courseKey. The key is compared after name normalisation so free-text
// course names match regardless of case.
func (c *Calculator) CourseStats(rounds []rounddomain.Round, courseKey string) CourseStats {
	key := rounddomain.NormalizeCourseName(courseKey)

	var onCourse []rounddomain.Round
	for _, r := range rounds {
		if rounddomain.NormalizeCourseName(r.CourseKey()) == key {
			onCourse = append(onCourse, r)
		}
	}

	holes := make(map[int]*holeAcc)
	pins := make(map[rounddomain.PinPosition]*pinAcc)
	for _, r := range onCourse {
		for _, h := range r.Holes {
			acc, ok := holes[h.Number]
			if !ok {
				acc = &holeAcc{par: h.Par}
				holes[h.Number] = acc
			}
			acc.plays++
			acc.strokes += h.Strokes
			acc.toPar += h.ToPar()
			if h.GIR() {
				acc.gir++
			}
			switch tp := h.ToPar(); {
			case tp < 0:
				acc.birdies++
			case tp == 0:
				acc.pars++
			default:
				acc.bogeys++
			}

			if h.Pin == nil || !h.Pin.Valid() {
				continue
			}
			p, ok := pins[*h.Pin]
			if !ok {
				p = &pinAcc{}
				pins[*h.Pin] = p
			}
			p.plays++
			p.toPar += h.ToPar()
			p.putts += h.Putts
			if h.GIR() {
				p.gir++
			}
		}
	}

	out := CourseStats{
		CourseKey: key,
		Rounds:    len(onCourse),
		Members:   c.MemberStatsAll(onCourse),
		Distance:  Distance(onCourse),
	}

	for number, acc := range holes {
		plays := float64(acc.plays)
		out.Holes = append(out.Holes, HoleBreakdown{
			Number:         number,
			Par:            acc.par,
			Plays:          acc.plays,
			AvgStrokes:     float64(acc.strokes) / plays,
			AvgToPar:       float64(acc.toPar) / plays,
			GIRRate:        rate(acc.gir, acc.plays),
			BirdieOrBetter: acc.birdies,
			Pars:           acc.pars,
			BogeyOrWorse:   acc.bogeys,
		})
	}
	slices.SortFunc(out.Holes, func(a, b HoleBreakdown) int { return cmp.Compare(a.Number, b.Number) })

	hardest := slices.Clone(out.Holes)
	slices.SortStableFunc(hardest, func(a, b HoleBreakdown) int { return cmp.Compare(b.AvgToPar, a.AvgToPar) })
	for _, h := range hardest {
		out.HardestHoles = append(out.HardestHoles, h.Number)
	}

	for _, pin := range rounddomain.PinGrid {
		p, ok := pins[pin]
		if !ok {
			continue
		}
		plays := float64(p.plays)
		out.Pins = append(out.Pins, PinBreakdown{
			Pin:      pin,
			Plays:    p.plays,
			AvgToPar: float64(p.toPar) / plays,
			GIRRate:  rate(p.gir, p.plays),
			AvgPutts: float64(p.putts) / plays,
		})
	}
	return out
}
