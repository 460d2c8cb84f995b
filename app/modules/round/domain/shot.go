package rounddomain

// ShotKind identifies one of the three shot variants.
type ShotKind string

const (
	ShotKindTee      ShotKind = "tee"
	ShotKindApproach ShotKind = "approach"
	ShotKindPutt     ShotKind = "putt"
)

// Assessment is the self-assessment shared by every shot kind.
// Rating is 1-5; zero means the player did not rate the shot.
type Assessment struct {
	Rating int    `json:"rating,omitempty"`
	Note   string `json:"note,omitempty"`
}

// Shot is one recorded stroke. The set of implementations is closed:
// TeeShot, ApproachShot and Putt.
type Shot interface {
	Kind() ShotKind
	SelfAssessment() Assessment
	valid() bool
}

type TeeOutcome string

const (
	TeeFairway TeeOutcome = "fairway"
	TeeRough   TeeOutcome = "rough"
	TeeBunker  TeeOutcome = "bunker"
	TeeOB      TeeOutcome = "ob"
	TeePenalty TeeOutcome = "penalty"
)

type Direction string

const (
	DirectionLeft   Direction = "left"
	DirectionCenter Direction = "center"
	DirectionRight  Direction = "right"
)

// Wind is recorded as free text by the entry form; these are the common values.
type Wind string

const (
	WindCalm  Wind = "calm"
	WindInto  Wind = "into"
	WindDown  Wind = "down"
	WindCross Wind = "cross"
)

// TeeShot is the first stroke of a par 4 or longer, or the tee stroke of a par 3.
type TeeShot struct {
	Assessment
	Club      string     `json:"club,omitempty"`
	Outcome   TeeOutcome `json:"outcome"`
	Direction Direction  `json:"direction,omitempty"`
	Wind      Wind       `json:"wind,omitempty"`
}

func (TeeShot) Kind() ShotKind               { return ShotKindTee }
func (s TeeShot) SelfAssessment() Assessment { return s.Assessment }

func (s TeeShot) valid() bool {
	switch s.Outcome {
	case TeeFairway, TeeRough, TeeBunker, TeeOB, TeePenalty:
	default:
		return false
	}
	switch s.Direction {
	case "", DirectionLeft, DirectionCenter, DirectionRight:
	default:
		return false
	}
	return validRating(s.Rating)
}

type Lie string

const (
	LieFairway     Lie = "fairway"
	LieLeftRough   Lie = "left-rough"
	LieRightRough  Lie = "right-rough"
	LieLeftBunker  Lie = "left-bunker"
	LieRightBunker Lie = "right-bunker"
)

// IsBunker reports whether the lie is one of the bunker variants.
func (l Lie) IsBunker() bool {
	return l == LieLeftBunker || l == LieRightBunker
}

func (l Lie) valid() bool {
	switch l {
	case LieFairway, LieLeftRough, LieRightRough, LieLeftBunker, LieRightBunker:
		return true
	}
	return false
}

// ApproachOutcome is one of the 21 result codes for a non-putt, non-tee stroke.
type ApproachOutcome string

const (
	GreenFrontLeft  ApproachOutcome = "green-front-left"
	GreenFront      ApproachOutcome = "green-front"
	GreenFrontRight ApproachOutcome = "green-front-right"
	GreenLeft       ApproachOutcome = "green-left"
	GreenCenter     ApproachOutcome = "green-center"
	GreenRight      ApproachOutcome = "green-right"
	GreenBackLeft   ApproachOutcome = "green-back-left"
	GreenBack       ApproachOutcome = "green-back"
	GreenBackRight  ApproachOutcome = "green-back-right"

	MissShortLeft  ApproachOutcome = "miss-short-left"
	MissShort      ApproachOutcome = "miss-short"
	MissShortRight ApproachOutcome = "miss-short-right"
	MissLeft       ApproachOutcome = "miss-left"
	MissRight      ApproachOutcome = "miss-right"
	MissLongLeft   ApproachOutcome = "miss-long-left"
	MissLong       ApproachOutcome = "miss-long"
	MissLongRight  ApproachOutcome = "miss-long-right"

	OBLeft       ApproachOutcome = "ob-left"
	OBRight      ApproachOutcome = "ob-right"
	PenaltyLeft  ApproachOutcome = "penalty-left"
	PenaltyRight ApproachOutcome = "penalty-right"
)

var approachOutcomes = map[ApproachOutcome]struct{}{
	GreenFrontLeft: {}, GreenFront: {}, GreenFrontRight: {},
	GreenLeft: {}, GreenCenter: {}, GreenRight: {},
	GreenBackLeft: {}, GreenBack: {}, GreenBackRight: {},
	MissShortLeft: {}, MissShort: {}, MissShortRight: {},
	MissLeft: {}, MissRight: {},
	MissLongLeft: {}, MissLong: {}, MissLongRight: {},
	OBLeft: {}, OBRight: {}, PenaltyLeft: {}, PenaltyRight: {},
}

// IsOB reports an out-of-bounds result.
func (o ApproachOutcome) IsOB() bool { return o == OBLeft || o == OBRight }

// IsPenalty reports a penalty-area result.
func (o ApproachOutcome) IsPenalty() bool { return o == PenaltyLeft || o == PenaltyRight }

// ApproachShot covers every full or partial swing after the tee shot.
type ApproachShot struct {
	Assessment
	Club     string          `json:"club,omitempty"`
	Lie      Lie             `json:"lie"`
	Slope    string          `json:"slope,omitempty"`
	Distance int             `json:"distance,omitempty"` // remaining yards to the pin
	Outcome  ApproachOutcome `json:"outcome"`
	Wind     Wind            `json:"wind,omitempty"`
}

func (ApproachShot) Kind() ShotKind               { return ShotKindApproach }
func (s ApproachShot) SelfAssessment() Assessment { return s.Assessment }

func (s ApproachShot) valid() bool {
	if !s.Lie.valid() || s.Distance < 0 {
		return false
	}
	if _, ok := approachOutcomes[s.Outcome]; !ok {
		return false
	}
	return validRating(s.Rating)
}

type PuttSlope string

const (
	PuttFlat     PuttSlope = "flat"
	PuttUphill   PuttSlope = "uphill"
	PuttDownhill PuttSlope = "downhill"
)

type PuttBreak string

const (
	BreakStraight PuttBreak = "straight"
	BreakHook     PuttBreak = "hook"
	BreakSlice    PuttBreak = "slice"
)

// PuttOutcome is "in" or one of eight miss directions.
type PuttOutcome string

const (
	PuttIn             PuttOutcome = "in"
	PuttMissShortLeft  PuttOutcome = "miss-short-left"
	PuttMissShort      PuttOutcome = "miss-short"
	PuttMissShortRight PuttOutcome = "miss-short-right"
	PuttMissLeft       PuttOutcome = "miss-left"
	PuttMissRight      PuttOutcome = "miss-right"
	PuttMissLongLeft   PuttOutcome = "miss-long-left"
	PuttMissLong       PuttOutcome = "miss-long"
	PuttMissLongRight  PuttOutcome = "miss-long-right"
)

var puttOutcomes = map[PuttOutcome]struct{}{
	PuttIn: {}, PuttMissShortLeft: {}, PuttMissShort: {}, PuttMissShortRight: {},
	PuttMissLeft: {}, PuttMissRight: {}, PuttMissLongLeft: {}, PuttMissLong: {}, PuttMissLongRight: {},
}

// Putt is a stroke on the green. Distance is in meters.
type Putt struct {
	Assessment
	Distance float64     `json:"distance,omitempty"`
	Slope    PuttSlope   `json:"slope,omitempty"`
	Break    PuttBreak   `json:"break,omitempty"`
	Outcome  PuttOutcome `json:"outcome"`
}

func (Putt) Kind() ShotKind               { return ShotKindPutt }
func (s Putt) SelfAssessment() Assessment { return s.Assessment }

func (s Putt) valid() bool {
	if _, ok := puttOutcomes[s.Outcome]; !ok {
		return false
	}
	if s.Distance < 0 {
		return false
	}
	switch s.Slope {
	case "", PuttFlat, PuttUphill, PuttDownhill:
	default:
		return false
	}
	switch s.Break {
	case "", BreakStraight, BreakHook, BreakSlice:
	default:
		return false
	}
	return validRating(s.Rating)
}

// Holed reports whether the putt dropped.
func (s Putt) Holed() bool { return s.Outcome == PuttIn }

func validRating(r int) bool {
	return r == 0 || (r >= 1 && r <= 5)
}

// ValidShots returns the shots that pass validation, preserving order.
// A malformed shot is dropped rather than invalidating the whole hole.
func ValidShots(shots []Shot) []Shot {
	if len(shots) == 0 {
		return nil
	}
	out := make([]Shot, 0, len(shots))
	for _, s := range shots {
		if s == nil || !s.valid() {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FirstApproach returns the first approach shot in the sequence, if any.
func FirstApproach(shots []Shot) (ApproachShot, bool) {
	for _, s := range shots {
		if a, ok := s.(ApproachShot); ok {
			return a, true
		}
	}
	return ApproachShot{}, false
}

// LastApproach returns the last approach shot in the sequence, if any.
func LastApproach(shots []Shot) (ApproachShot, bool) {
	for i := len(shots) - 1; i >= 0; i-- {
		if a, ok := shots[i].(ApproachShot); ok {
			return a, true
		}
	}
	return ApproachShot{}, false
}
