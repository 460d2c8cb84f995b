package statsdomain

import (
	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
)

// fullRound is the hole count round totals are scaled to.
const fullRound = 18

// tally accumulates raw counts over a player's rounds. Every rate in
// MemberStats is derived from these counts in a single pass.
type tally struct {
	rounds int
	holes  int

	strokes     int
	scaledGross float64
	scaledToPar float64
	scaledPutts float64

	parClassStrokes [3]int // par 3, 4, 5
	parClassHoles   [3]int

	gir          int
	girPutts     int
	fairwayOpps  int
	fairwayKeeps int
	scrambleOpps int
	scrambles    int

	birdies     int
	noBogey     int
	noDouble    int
	bounceOpps  int
	bounceBacks int

	underThreePutt int
	onePutt        int

	girFairwayOpps int
	girFairway     int
	girRoughOpps   int
	girRough       int

	ob      int
	penalty int
	bunker  int

	sandOpps  int
	sandSaves int
	driveSum  float64
	drives    int
}

// addRound folds one round in. Holes are visited in ascending hole number so
// the bounce-back check sees the real previous hole.
func (t *tally) addRound(r rounddomain.Round, th Thresholds) {
	holes := r.SortedHoles()
	if len(holes) == 0 {
		return
	}

	t.rounds++
	scale := float64(fullRound) / float64(len(holes))
	t.scaledGross += float64(r.TotalScore()) * scale
	t.scaledToPar += float64(r.ToPar()) * scale
	t.scaledPutts += float64(r.TotalPutts()) * scale

	for i, h := range holes {
		t.addHole(h, th)
		if i > 0 && holes[i-1].ToPar() >= 1 {
			t.bounceOpps++
			if h.ToPar() <= 0 {
				t.bounceBacks++
			}
		}
	}
}

func (t *tally) addHole(h rounddomain.Hole, th Thresholds) {
	t.holes++
	t.strokes += h.Strokes
	t.ob += h.OBCount
	t.penalty += h.PenaltyCount
	t.bunker += h.BunkerCount

	if idx := h.Par - 3; idx >= 0 && idx < len(t.parClassHoles) {
		t.parClassHoles[idx]++
		t.parClassStrokes[idx] += h.Strokes
	}

	toPar := h.ToPar()
	if toPar < 0 {
		t.birdies++
	}
	if toPar < 1 {
		t.noBogey++
	}
	if toPar < 2 {
		t.noDouble++
	}

	gir := h.GIR()
	if gir {
		t.gir++
		t.girPutts += h.Putts
	} else {
		t.scrambleOpps++
		if toPar <= 0 {
			t.scrambles++
		}
	}

	if h.Putts < 3 {
		t.underThreePutt++
	}
	if h.Putts == 1 {
		t.onePutt++
	}

	if h.Par >= 4 {
		t.fairwayOpps++
		if h.Fairway == rounddomain.FairwayKeep {
			t.fairwayKeeps++
			t.girFairwayOpps++
			if gir {
				t.girFairway++
			}
		} else {
			t.girRoughOpps++
			if gir {
				t.girRough++
			}
		}
	}

	if h.HasDetail() {
		t.addDetail(h, th)
	}
}

// addDetail handles the metrics that need shot-level records.
func (t *tally) addDetail(h rounddomain.Hole, th Thresholds) {
	shots := rounddomain.ValidShots(h.Shots)

	for _, s := range shots {
		a, ok := s.(rounddomain.ApproachShot)
		if !ok {
			continue
		}
		if a.Lie.IsBunker() && a.Distance > 0 && a.Distance <= th.SandSaveMaxYards {
			t.sandOpps++
			if h.ToPar() <= 0 {
				t.sandSaves++
			}
			break
		}
	}

	if h.Par == 4 && h.Yardage != nil {
		if first, ok := rounddomain.FirstApproach(shots); ok && first.Distance > 0 {
			drive := *h.Yardage - first.Distance
			if drive > th.DriveMinYards && drive < th.DriveMaxYards {
				t.driveSum += float64(drive)
				t.drives++
			}
		}
	}
}

// rate is num/den as a percentage, 0 when there is nothing to divide by.
func rate(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

// nullableRate is rate, but nil when there was no opportunity at all.
func nullableRate(num, den int) *float64 {
	if den == 0 {
		return nil
	}
	v := float64(num) / float64(den) * 100
	return &v
}

func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func (t *tally) memberStats(playerID string) MemberStats {
	s := MemberStats{
		PlayerID:         playerID,
		RoundsPlayed:     t.rounds,
		HolesPlayed:      t.holes,
		AvgScore:         mean(float64(t.strokes), t.holes),
		Gross:            mean(t.scaledGross, t.rounds),
		ToPar:            mean(t.scaledToPar, t.rounds),
		Putts:            mean(t.scaledPutts, t.rounds),
		GIR:              rate(t.gir, t.holes),
		FairwayKeep:      rate(t.fairwayKeeps, t.fairwayOpps),
		Scramble:         rate(t.scrambles, t.scrambleOpps),
		Par3Avg:          mean(float64(t.parClassStrokes[0]), t.parClassHoles[0]),
		Par4Avg:          mean(float64(t.parClassStrokes[1]), t.parClassHoles[1]),
		Par5Avg:          mean(float64(t.parClassStrokes[2]), t.parClassHoles[2]),
		BirdieRate:       rate(t.birdies, t.holes),
		BogeyAvoid:       rate(t.noBogey, t.holes),
		DoubleBogeyAvoid: rate(t.noDouble, t.holes),
		BounceBack:       rate(t.bounceBacks, t.bounceOpps),
		PuttsPerGIR:      mean(float64(t.girPutts), t.gir),
		ThreePuttAvoid:   rate(t.underThreePutt, t.holes),
		OnePutt:          rate(t.onePutt, t.holes),
		GIRFromFairway:   rate(t.girFairway, t.girFairwayOpps),
		GIRFromRough:     rate(t.girRough, t.girRoughOpps),
		OBPerRound:       mean(float64(t.ob), t.rounds),
		PenaltyPerRound:  mean(float64(t.penalty), t.rounds),
		BunkerPerRound:   mean(float64(t.bunker), t.rounds),
		SandSave:         nullableRate(t.sandSaves, t.sandOpps),
	}
	if t.drives > 0 {
		d := t.driveSum / float64(t.drives)
		s.DrivingDistance = &d
	}
	return s
}
