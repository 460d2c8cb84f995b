package statsdomain

import (
	"math"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
)

// DistanceBucket is a success rate over one distance band.
type DistanceBucket struct {
	Label     string  `json:"label"`
	Rate      float64 `json:"rate"`
	Attempts  int     `json:"attempts"`
	Successes int     `json:"successes"`
}

// bucket covers the half-open range (previous upper, upper].
type bucket struct {
	label string
	upper float64
}

var (
	puttBuckets = []bucket{
		{"0-3m", 3},
		{"3-5m", 5},
		{"5-10m", 10},
		{"10-15m", 15},
		{"15m+", math.Inf(1)},
	}
	approachBuckets = []bucket{
		{"0-100y", 100},
		{"100-125y", 125},
		{"125-150y", 150},
		{"150-175y", 175},
		{"175-200y", 200},
		{"200y+", math.Inf(1)},
	}
)

// bucketIndex returns the bucket holding d, or -1 for non-positive distances.
func bucketIndex(bounds []bucket, d float64) int {
	if d <= 0 || math.IsNaN(d) {
		return -1
	}
	for i, b := range bounds {
		if d <= b.upper {
			return i
		}
	}
	return -1
}

type counter struct {
	attempts  []int
	successes []int
}

func newCounter(n int) *counter {
	return &counter{attempts: make([]int, n), successes: make([]int, n)}
}

func (c *counter) add(i int, ok bool) {
	if i < 0 {
		return
	}
	c.attempts[i]++
	if ok {
		c.successes[i]++
	}
}

func (c *counter) buckets(bounds []bucket) []DistanceBucket {
	var out []DistanceBucket
	for i, b := range bounds {
		if c.attempts[i] == 0 {
			continue
		}
		out = append(out, DistanceBucket{
			Label:     b.label,
			Rate:      rate(c.successes[i], c.attempts[i]),
			Attempts:  c.attempts[i],
			Successes: c.successes[i],
		})
	}
	return out
}

// PuttingBuckets is the make rate by putt distance in meters.
func PuttingBuckets(rounds []rounddomain.Round) []DistanceBucket {
	c := newCounter(len(puttBuckets))
	for _, r := range rounds {
		for _, h := range r.Holes {
			for _, s := range rounddomain.ValidShots(h.Shots) {
				if p, ok := s.(rounddomain.Putt); ok {
					c.add(bucketIndex(puttBuckets, p.Distance), p.Holed())
				}
			}
		}
	}
	return c.buckets(puttBuckets)
}

// ApproachBuckets is the GIR rate by the distance of the last approach shot
// on each hole, in yards.
func ApproachBuckets(rounds []rounddomain.Round) []DistanceBucket {
	c := newCounter(len(approachBuckets))
	for _, r := range rounds {
		for _, h := range r.Holes {
			last, ok := rounddomain.LastApproach(rounddomain.ValidShots(h.Shots))
			if !ok {
				continue
			}
			c.add(bucketIndex(approachBuckets, float64(last.Distance)), h.GIR())
		}
	}
	return c.buckets(approachBuckets)
}

// DistanceProfile bundles both bucket sets.
type DistanceProfile struct {
	Putting  []DistanceBucket `json:"putting"`
	Approach []DistanceBucket `json:"approach"`
}

// Distance computes both bucket sets over rounds.
func Distance(rounds []rounddomain.Round) DistanceProfile {
	return DistanceProfile{
		Putting:  PuttingBuckets(rounds),
		Approach: ApproachBuckets(rounds),
	}
}
