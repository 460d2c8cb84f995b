package rounddb

import (
	"testing"
	"time"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainDropsUnreadableShotDetail(t *testing.T) {
	m := &Round{
		ID:         uuid.New(),
		ClubID:     "club-1",
		PlayerID:   "ana",
		CourseName: "Pine Hills",
		PlayedOn:   time.Date(2026, 5, 2, 14, 0, 0, 0, time.UTC),
		Holes: []*Hole{
			{Number: 1, Par: 4, Strokes: 5, Putts: 2, Fairway: "keep", Shots: `{"type":"tee"}`},
			{Number: 2, Par: 3, Strokes: 3, Putts: 2, Fairway: "keep", Shots: `[{"type":"putt","distance":4,"outcome":"in"},{"type":"sidespin"}]`},
			{Number: 3, Par: 5, Strokes: 6, Putts: 2, Fairway: "left"},
		},
	}

	r, err := m.toDomain()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hole 1")
	assert.NotContains(t, err.Error(), "hole 2")

	require.Len(t, r.Holes, 3)
	assert.Nil(t, r.Holes[0].Shots)
	assert.Equal(t, 5, r.Holes[0].Strokes)
	assert.Len(t, r.Holes[1].Shots, 1, "unknown shot types are skipped")
	assert.Equal(t, rounddomain.FairwayLeft, r.Holes[2].Fairway)
	assert.Equal(t, 14, r.TotalScore())
}

func TestToDomainCleanRound(t *testing.T) {
	m := &Round{
		ID:    uuid.New(),
		Holes: []*Hole{{Number: 1, Par: 4, Strokes: 4, Putts: 2, Fairway: "keep", Shots: "null"}},
	}

	r, err := m.toDomain()
	require.NoError(t, err)
	assert.Nil(t, r.Holes[0].Shots)
}
