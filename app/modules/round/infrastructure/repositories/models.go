package rounddb

import (
	"errors"
	"fmt"
	"time"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Round is the stored header of one player's round. Totals are derived at
// write time so listings can sort and filter without loading holes.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	ClubID        string    `bun:"club_id,notnull"`
	PlayerID      string    `bun:"player_id,notnull"`
	CourseID      string    `bun:"course_id,nullzero"`
	CourseName    string    `bun:"course_name,nullzero"`
	CourseKey     string    `bun:"course_key,notnull"`
	PlayedOn      time.Time `bun:"played_on,notnull"`
	Tee           string    `bun:"tee,nullzero"`
	HoleCount     int       `bun:"hole_count,notnull"`
	TotalScore    int       `bun:"total_score,notnull"`
	TotalPar      int       `bun:"total_par,notnull"`
	CreatedAt     time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Holes []*Hole `bun:"rel:has-many,join:id=round_id"`
}

// Hole is the flat per-hole record. Shots keeps the tagged shot array
// verbatim.
type Hole struct {
	bun.BaseModel `bun:"table:round_holes,alias:rh"`
	RoundID       uuid.UUID `bun:"round_id,pk,type:uuid"`
	Number        int       `bun:"number,pk"`
	Par           int       `bun:"par,notnull"`
	Yardage       *int      `bun:"yardage"`
	Strokes       int       `bun:"strokes,notnull"`
	Putts         int       `bun:"putts,notnull"`
	Fairway       string    `bun:"fairway,notnull"`
	OBCount       int       `bun:"ob_count,notnull"`
	BunkerCount   int       `bun:"bunker_count,notnull"`
	PenaltyCount  int       `bun:"penalty_count,notnull"`
	Pin           *string   `bun:"pin"`
	Shots         string    `bun:"shots,type:jsonb,nullzero"`
}

func toModel(r rounddomain.Round) (*Round, error) {
	m := &Round{
		ID:         r.ID,
		ClubID:     r.ClubID,
		PlayerID:   r.PlayerID,
		CourseID:   r.CourseID,
		CourseName: r.CourseName,
		CourseKey:  r.CourseKey(),
		PlayedOn:   r.PlayedOn.UTC(),
		Tee:        r.Tee,
		HoleCount:  r.HoleCount(),
		TotalScore: r.TotalScore(),
		TotalPar:   r.TotalPar(),
		Holes:      make([]*Hole, 0, len(r.Holes)),
	}
	for _, h := range r.Holes {
		hm := &Hole{
			RoundID:      r.ID,
			Number:       h.Number,
			Par:          h.Par,
			Yardage:      h.Yardage,
			Strokes:      h.Strokes,
			Putts:        h.Putts,
			Fairway:      string(h.Fairway),
			OBCount:      h.OBCount,
			BunkerCount:  h.BunkerCount,
			PenaltyCount: h.PenaltyCount,
		}
		if h.Pin != nil {
			pin := string(*h.Pin)
			hm.Pin = &pin
		}
		if h.HasDetail() {
			data, err := rounddomain.EncodeShots(h.Shots)
			if err != nil {
				return nil, fmt.Errorf("hole %d: %w", h.Number, err)
			}
			hm.Shots = string(data)
		}
		m.Holes = append(m.Holes, hm)
	}
	return m, nil
}

// toDomain maps a stored round. A hole whose shots column cannot be decoded
// keeps its totals and loses its detail; the returned error names those
// holes and the round is still complete otherwise.
func (m *Round) toDomain() (rounddomain.Round, error) {
	var dropped []error
	r := rounddomain.Round{
		ID:         m.ID,
		ClubID:     m.ClubID,
		PlayerID:   m.PlayerID,
		CourseID:   m.CourseID,
		CourseName: m.CourseName,
		PlayedOn:   m.PlayedOn.UTC(),
		Tee:        m.Tee,
		Holes:      make([]rounddomain.Hole, 0, len(m.Holes)),
	}
	for _, hm := range m.Holes {
		h := rounddomain.Hole{
			Number:       hm.Number,
			Par:          hm.Par,
			Yardage:      hm.Yardage,
			Strokes:      hm.Strokes,
			Putts:        hm.Putts,
			Fairway:      rounddomain.FairwayResult(hm.Fairway),
			OBCount:      hm.OBCount,
			BunkerCount:  hm.BunkerCount,
			PenaltyCount: hm.PenaltyCount,
		}
		if hm.Pin != nil {
			pin := rounddomain.PinPosition(*hm.Pin)
			h.Pin = &pin
		}
		if hm.Shots != "" {
			shots, err := rounddomain.DecodeShots([]byte(hm.Shots))
			if err != nil {
				dropped = append(dropped, fmt.Errorf("hole %d: %w", hm.Number, err))
			} else {
				h.Shots = shots
			}
		}
		r.Holes = append(r.Holes, h)
	}
	return r, errors.Join(dropped...)
}
