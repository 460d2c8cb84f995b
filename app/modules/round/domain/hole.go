package rounddomain

// FairwayResult is where the tee shot finished relative to the fairway.
type FairwayResult string

const (
	FairwayKeep  FairwayResult = "keep"
	FairwayLeft  FairwayResult = "left"
	FairwayRight FairwayResult = "right"
)

// PinPosition is one cell of a 3x3 grid over the green.
type PinPosition string

const (
	PinFrontLeft    PinPosition = "front-left"
	PinFrontCenter  PinPosition = "front-center"
	PinFrontRight   PinPosition = "front-right"
	PinMiddleLeft   PinPosition = "middle-left"
	PinMiddleCenter PinPosition = "middle-center"
	PinMiddleRight  PinPosition = "middle-right"
	PinBackLeft     PinPosition = "back-left"
	PinBackCenter   PinPosition = "back-center"
	PinBackRight    PinPosition = "back-right"
)

// PinGrid lists the pin positions front to back, left to right.
var PinGrid = []PinPosition{
	PinFrontLeft, PinFrontCenter, PinFrontRight,
	PinMiddleLeft, PinMiddleCenter, PinMiddleRight,
	PinBackLeft, PinBackCenter, PinBackRight,
}

// Valid reports whether p is one of the nine grid cells.
func (p PinPosition) Valid() bool {
	for _, g := range PinGrid {
		if g == p {
			return true
		}
	}
	return false
}

// Hole is the flat scoring record persisted for one hole of a round.
type Hole struct {
	Number       int           `json:"number"`
	Par          int           `json:"par"`
	Yardage      *int          `json:"yardage,omitempty"`
	Strokes      int           `json:"strokes"`
	Putts        int           `json:"putts"`
	Fairway      FairwayResult `json:"fairway"`
	OBCount      int           `json:"ob_count"`
	BunkerCount  int           `json:"bunker_count"`
	PenaltyCount int           `json:"penalty_count"`
	Pin          *PinPosition  `json:"pin,omitempty"`
	Shots        []Shot        `json:"-"`
}

// HasDetail reports whether shot-by-shot detail was recorded.
func (h Hole) HasDetail() bool { return len(h.Shots) > 0 }

// ToPar is strokes relative to par.
func (h Hole) ToPar() int { return h.Strokes - h.Par }

// StrokesToGreen is the number of strokes taken before the first putt.
func (h Hole) StrokesToGreen() int { return h.Strokes - h.Putts }

// GIR reports a green in regulation: reached in par-2 strokes or fewer.
func (h Hole) GIR() bool { return h.StrokesToGreen() <= h.Par-2 }

// ManualScore carries counts typed directly on the scorecard when no shot
// detail was recorded.
type ManualScore struct {
	Strokes      int           `json:"strokes"`
	Putts        int           `json:"putts"`
	Fairway      FairwayResult `json:"fairway,omitempty"`
	OBCount      int           `json:"ob_count,omitempty"`
	BunkerCount  int           `json:"bunker_count,omitempty"`
	PenaltyCount int           `json:"penalty_count,omitempty"`
}

// HoleEntry is what the score-entry flow submits for one hole.
type HoleEntry struct {
	Number  int
	Par     int
	Yardage *int
	Pin     *PinPosition
	Shots   []Shot
	Manual  *ManualScore
}

// AggregateHole turns one hole's entry into its flat record. Shot detail
// wins over manual counts; malformed shots are ignored. The transform has
// no cross-hole state, so identical input always yields an identical record.
func AggregateHole(entry HoleEntry) Hole {
	h := Hole{
		Number:  entry.Number,
		Par:     entry.Par,
		Yardage: copyInt(entry.Yardage),
		Pin:     copyPin(entry.Pin),
		Fairway: FairwayKeep,
	}

	shots := ValidShots(entry.Shots)
	if len(shots) == 0 {
		if m := entry.Manual; m != nil {
			h.Strokes = m.Strokes
			h.Putts = m.Putts
			h.OBCount = m.OBCount
			h.BunkerCount = m.BunkerCount
			h.PenaltyCount = m.PenaltyCount
			if entry.Par != 3 && m.Fairway != "" {
				h.Fairway = m.Fairway
			}
		}
		return h
	}

	var tee *TeeShot
	for _, s := range shots {
		switch v := s.(type) {
		case TeeShot:
			if tee == nil {
				t := v
				tee = &t
			}
			switch v.Outcome {
			case TeeOB:
				h.OBCount++
			case TeePenalty:
				h.PenaltyCount++
			}
		case ApproachShot:
			if v.Lie.IsBunker() {
				h.BunkerCount++
			}
			switch {
			case v.Outcome.IsOB():
				h.OBCount++
			case v.Outcome.IsPenalty():
				h.PenaltyCount++
			}
		case Putt:
			h.Putts++
		}
	}

	h.Strokes = len(shots) + h.OBCount + h.PenaltyCount
	h.Fairway = fairwayFromTee(entry.Par, tee)
	h.Shots = shots
	return h
}

func fairwayFromTee(par int, tee *TeeShot) FairwayResult {
	if par == 3 || tee == nil || tee.Outcome == TeeFairway {
		return FairwayKeep
	}
	if tee.Direction == DirectionRight {
		return FairwayRight
	}
	return FairwayLeft
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyPin(p *PinPosition) *PinPosition {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
