package rounddomain

import (
	"encoding/json"
	"fmt"
)

// HoleSubmission is one hole as sent by the score-entry flow. Shots holds
// the tagged JSON array when shot detail was recorded.
type HoleSubmission struct {
	Number  int             `json:"number"`
	Par     int             `json:"par"`
	Yardage *int            `json:"yardage,omitempty"`
	Pin     *PinPosition    `json:"pin,omitempty"`
	Shots   json.RawMessage `json:"shots,omitempty"`
	Manual  *ManualScore    `json:"manual,omitempty"`
}

// Entry decodes the hole into the aggregator's input.
func (h HoleSubmission) Entry() (HoleEntry, error) {
	shots, err := DecodeShots(h.Shots)
	if err != nil {
		return HoleEntry{}, fmt.Errorf("hole %d: %w", h.Number, err)
	}
	return HoleEntry{
		Number:  h.Number,
		Par:     h.Par,
		Yardage: h.Yardage,
		Pin:     h.Pin,
		Shots:   shots,
		Manual:  h.Manual,
	}, nil
}

// RoundSubmission is a complete round as submitted by a member. PlayedOn is
// the raw date text; it may be a timestamp, a calendar date or a phrase such
// as "yesterday".
type RoundSubmission struct {
	ClubID     string           `json:"club_id"`
	PlayerID   string           `json:"player_id"`
	CourseID   string           `json:"course_id,omitempty"`
	CourseName string           `json:"course_name,omitempty"`
	PlayedOn   string           `json:"played_on"`
	Tee        string           `json:"tee,omitempty"`
	Holes      []HoleSubmission `json:"holes"`
}
