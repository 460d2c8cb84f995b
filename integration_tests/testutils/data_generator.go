package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
)

var pins = []string{
	string(rounddomain.PinFrontLeft), string(rounddomain.PinFrontCenter), string(rounddomain.PinFrontRight),
	string(rounddomain.PinMiddleLeft), string(rounddomain.PinMiddleCenter), string(rounddomain.PinMiddleRight),
	string(rounddomain.PinBackLeft), string(rounddomain.PinBackCenter), string(rounddomain.PinBackRight),
}

var fairways = []string{
	string(rounddomain.FairwayKeep), string(rounddomain.FairwayKeep),
	string(rounddomain.FairwayLeft), string(rounddomain.FairwayRight),
}

// TestDataGenerator builds plausible rounds and submissions from a seed, so
// a failing run can be reproduced.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator. Without a seed it uses the clock.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	s := time.Now().UnixNano()
	if len(seed) > 0 {
		s = seed[0]
	}
	return &TestDataGenerator{faker: gofakeit.New(uint64(s)), seed: s}
}

func (g *TestDataGenerator) Seed() int64 { return g.seed }

// PlayerIDs returns n distinct player ids.
func (g *TestDataGenerator) PlayerIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("player-%d-%s", i+1, g.faker.Numerify("####"))
	}
	return ids
}

// Pars returns a course layout of n holes with pars between 3 and 5.
func (g *TestDataGenerator) Pars(n int) []int {
	pars := make([]int, n)
	for i := range pars {
		pars[i] = g.faker.Number(3, 5)
	}
	return pars
}

// ManualScore returns a valid per-hole summary for a hole of par.
func (g *TestDataGenerator) ManualScore(par int) rounddomain.ManualScore {
	strokes := g.faker.Number(par-1, par+3)
	putts := g.faker.Number(0, min(3, strokes-1))
	m := rounddomain.ManualScore{Strokes: strokes, Putts: putts}
	if par != 3 {
		m.Fairway = rounddomain.FairwayResult(g.faker.RandomString(fairways))
	}
	if g.faker.Number(1, 10) == 1 {
		m.BunkerCount = 1
	}
	if g.faker.Number(1, 20) == 1 {
		m.OBCount = 1
	}
	return m
}

func (g *TestDataGenerator) pin() *rounddomain.PinPosition {
	if !g.faker.Bool() {
		return nil
	}
	p := rounddomain.PinPosition(g.faker.RandomString(pins))
	return &p
}

// Submission builds a manual-entry submission over pars.
func (g *TestDataGenerator) Submission(clubID, playerID, courseName string, pars []int) rounddomain.RoundSubmission {
	holes := make([]rounddomain.HoleSubmission, len(pars))
	for i, par := range pars {
		m := g.ManualScore(par)
		yardage := g.faker.Number(par*60, par*110)
		holes[i] = rounddomain.HoleSubmission{
			Number:  i + 1,
			Par:     par,
			Yardage: &yardage,
			Pin:     g.pin(),
			Manual:  &m,
		}
	}
	return rounddomain.RoundSubmission{
		ClubID:     clubID,
		PlayerID:   playerID,
		CourseName: courseName,
		Tee:        g.faker.RandomString([]string{"white", "yellow", "blue"}),
		Holes:      holes,
	}
}

// Round builds an aggregated round over pars played on playedOn.
func (g *TestDataGenerator) Round(clubID, playerID, courseName string, pars []int, playedOn time.Time) rounddomain.Round {
	sub := g.Submission(clubID, playerID, courseName, pars)
	holes := make([]rounddomain.Hole, len(sub.Holes))
	for i, hs := range sub.Holes {
		holes[i] = rounddomain.AggregateHole(rounddomain.HoleEntry{
			Number:  hs.Number,
			Par:     hs.Par,
			Yardage: hs.Yardage,
			Pin:     hs.Pin,
			Manual:  hs.Manual,
		})
	}
	return rounddomain.Round{
		ID:         uuid.New(),
		ClubID:     clubID,
		PlayerID:   playerID,
		CourseName: courseName,
		PlayedOn:   playedOn.UTC().Truncate(time.Second),
		Tee:        sub.Tee,
		Holes:      holes,
	}
}

// Club builds roundsEach rounds for every player, one day apart, ending at
// end. All rounds are on the same course.
func (g *TestDataGenerator) Club(clubID, courseName string, players []string, roundsEach int, end time.Time) []rounddomain.Round {
	pars := g.Pars(18)
	rounds := make([]rounddomain.Round, 0, len(players)*roundsEach)
	for _, p := range players {
		for i := range roundsEach {
			rounds = append(rounds, g.Round(clubID, p, courseName, pars, end.AddDate(0, 0, -i)))
		}
	}
	return rounds
}
