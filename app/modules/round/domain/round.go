package rounddomain

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Round is one player's completed round. It is written once and never edited.
type Round struct {
	ID         uuid.UUID `json:"id"`
	ClubID     string    `json:"club_id"`
	PlayerID   string    `json:"player_id"`
	CourseID   string    `json:"course_id,omitempty"`
	CourseName string    `json:"course_name,omitempty"`
	PlayedOn   time.Time `json:"played_on"`
	Tee        string    `json:"tee,omitempty"`
	Holes      []Hole    `json:"holes"`
}

// CourseKey identifies the course for course-scoped statistics: the course
// reference when present, otherwise the normalised free-text name.
func (r Round) CourseKey() string {
	if r.CourseID != "" {
		return r.CourseID
	}
	return NormalizeCourseName(r.CourseName)
}

// NormalizeCourseName folds case and surrounding whitespace.
func NormalizeCourseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SortedHoles returns the holes ordered by ascending hole number without
// modifying the round.
func (r Round) SortedHoles() []Hole {
	holes := slices.Clone(r.Holes)
	slices.SortStableFunc(holes, func(a, b Hole) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return holes
}

// HoleCount is the number of holes recorded.
func (r Round) HoleCount() int { return len(r.Holes) }

// TotalScore is the sum of strokes over every hole.
func (r Round) TotalScore() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Strokes
	}
	return total
}

// TotalPar is the sum of par over every hole.
func (r Round) TotalPar() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Par
	}
	return total
}

// TotalPutts is the sum of putts over every hole.
func (r Round) TotalPutts() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Putts
	}
	return total
}

// ToPar is the round total relative to par.
func (r Round) ToPar() int { return r.TotalScore() - r.TotalPar() }

// OutScore sums holes 1-9.
func (r Round) OutScore() int {
	total := 0
	for _, h := range r.Holes {
		if h.Number <= 9 {
			total += h.Strokes
		}
	}
	return total
}

// InScore sums holes 10-18.
func (r Round) InScore() int {
	total := 0
	for _, h := range r.Holes {
		if h.Number > 9 {
			total += h.Strokes
		}
	}
	return total
}
