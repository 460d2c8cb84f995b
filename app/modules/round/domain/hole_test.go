package rounddomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func intPtr(v int) *int { return &v }

func TestAggregateHole(t *testing.T) {
	pin := PinBackLeft

	tests := []struct {
		name  string
		entry HoleEntry
		want  Hole
	}{
		{
			name: "par 4 fairway two putts",
			entry: HoleEntry{
				Number: 1, Par: 4, Yardage: intPtr(380), Pin: &pin,
				Shots: []Shot{
					TeeShot{Club: "driver", Outcome: TeeFairway, Direction: DirectionCenter},
					ApproachShot{Club: "8i", Lie: LieFairway, Distance: 140, Outcome: GreenCenter},
					Putt{Distance: 6, Outcome: PuttMissShort},
					Putt{Distance: 0.5, Outcome: PuttIn},
				},
			},
			want: Hole{
				Number: 1, Par: 4, Yardage: intPtr(380), Pin: &pin,
				Strokes: 4, Putts: 2, Fairway: FairwayKeep,
			},
		},
		{
			name: "tee out of bounds right adds a stroke",
			entry: HoleEntry{
				Number: 2, Par: 4,
				Shots: []Shot{
					TeeShot{Outcome: TeeOB, Direction: DirectionRight},
					TeeShot{Outcome: TeeRough, Direction: DirectionLeft},
					ApproachShot{Lie: LieLeftRough, Distance: 150, Outcome: GreenFront},
					Putt{Distance: 2, Outcome: PuttIn},
				},
			},
			want: Hole{Number: 2, Par: 4, Strokes: 5, Putts: 1, Fairway: FairwayRight, OBCount: 1},
		},
		{
			name: "approach into penalty area and a bunker lie",
			entry: HoleEntry{
				Number: 3, Par: 5,
				Shots: []Shot{
					TeeShot{Outcome: TeeBunker},
					ApproachShot{Lie: LieRightBunker, Distance: 260, Outcome: PenaltyLeft},
					ApproachShot{Lie: LieFairway, Distance: 90, Outcome: GreenBack},
					Putt{Distance: 4, Outcome: PuttIn},
				},
			},
			want: Hole{Number: 3, Par: 5, Strokes: 5, Putts: 1, Fairway: FairwayLeft, BunkerCount: 1, PenaltyCount: 1},
		},
		{
			name: "par 3 always keeps the fairway",
			entry: HoleEntry{
				Number: 4, Par: 3,
				Shots: []Shot{
					TeeShot{Outcome: TeeRough, Direction: DirectionRight},
					ApproachShot{Lie: LieRightRough, Distance: 20, Outcome: GreenLeft},
					Putt{Distance: 3, Outcome: PuttIn},
				},
			},
			want: Hole{Number: 4, Par: 3, Strokes: 3, Putts: 1, Fairway: FairwayKeep},
		},
		{
			name: "missing tee shot defaults to keep",
			entry: HoleEntry{
				Number: 5, Par: 4,
				Shots: []Shot{
					ApproachShot{Lie: LieFairway, Distance: 120, Outcome: GreenCenter},
					Putt{Outcome: PuttIn},
				},
			},
			want: Hole{Number: 5, Par: 4, Strokes: 2, Putts: 1, Fairway: FairwayKeep},
		},
		{
			name: "malformed shots are ignored",
			entry: HoleEntry{
				Number: 6, Par: 4,
				Shots: []Shot{
					TeeShot{Outcome: "sliced"},
					TeeShot{Outcome: TeeFairway},
					ApproachShot{Lie: "cart-path", Outcome: GreenCenter},
					ApproachShot{Lie: LieFairway, Distance: 100, Outcome: GreenCenter},
					Putt{Outcome: "lipped"},
					Putt{Outcome: PuttIn, Assessment: Assessment{Rating: 9}},
					Putt{Outcome: PuttIn},
				},
			},
			want: Hole{Number: 6, Par: 4, Strokes: 3, Putts: 1, Fairway: FairwayKeep},
		},
		{
			name: "manual counts pass through",
			entry: HoleEntry{
				Number: 7, Par: 4,
				Manual: &ManualScore{Strokes: 6, Putts: 3, Fairway: FairwayLeft, OBCount: 1},
			},
			want: Hole{Number: 7, Par: 4, Strokes: 6, Putts: 3, Fairway: FairwayLeft, OBCount: 1},
		},
		{
			name: "manual par 3 fairway is forced to keep",
			entry: HoleEntry{
				Number: 8, Par: 3,
				Manual: &ManualScore{Strokes: 3, Putts: 2, Fairway: FairwayRight},
			},
			want: Hole{Number: 8, Par: 3, Strokes: 3, Putts: 2, Fairway: FairwayKeep},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateHole(tt.entry)
			got.Shots = nil
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("AggregateHole() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregateHoleIsIdempotent(t *testing.T) {
	entry := HoleEntry{
		Number: 9, Par: 5, Yardage: intPtr(510),
		Shots: []Shot{
			TeeShot{Outcome: TeePenalty, Direction: DirectionLeft},
			ApproachShot{Lie: LieLeftRough, Distance: 240, Outcome: MissShortRight},
			ApproachShot{Lie: LieRightBunker, Distance: 30, Outcome: GreenFrontLeft},
			Putt{Distance: 8, Break: BreakHook, Outcome: PuttMissLong},
			Putt{Distance: 1, Outcome: PuttIn},
		},
	}

	first := AggregateHole(entry)
	second := AggregateHole(entry)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second run differs (-first +second):\n%s", diff)
	}
	if first.Strokes != 6 {
		t.Fatalf("expected 6 strokes, got %d", first.Strokes)
	}
}

func TestAggregateHoleDoesNotAliasInput(t *testing.T) {
	yards := 400
	entry := HoleEntry{Number: 1, Par: 4, Yardage: &yards, Manual: &ManualScore{Strokes: 4, Putts: 2}}

	h := AggregateHole(entry)
	yards = 999

	if *h.Yardage != 400 {
		t.Fatalf("hole yardage changed with caller input: %d", *h.Yardage)
	}
}

func TestHoleGIR(t *testing.T) {
	h := Hole{Par: 4, Strokes: 4, Putts: 2}
	if !h.GIR() {
		t.Fatal("expected GIR for par 4 reached in two")
	}

	for putts := 0; putts <= 4; putts++ {
		// An extra putt with strokes held fixed means one fewer stroke to
		// the green, so it can never turn a GIR into a miss.
		before := Hole{Par: 4, Strokes: 5, Putts: putts}
		after := Hole{Par: 4, Strokes: 5, Putts: putts + 1}
		if before.GIR() && !after.GIR() {
			t.Fatalf("GIR lost when putts rose from %d to %d", putts, putts+1)
		}

		// An extra putt on top of the same approach never changes GIR.
		longer := Hole{Par: 4, Strokes: 6, Putts: putts + 1}
		if before.GIR() != longer.GIR() {
			t.Fatalf("GIR changed by an extra putt after the same approach (putts %d)", putts)
		}
	}

	miss := Hole{Par: 3, Strokes: 5, Putts: 2}
	if miss.GIR() {
		t.Fatal("par 3 with three strokes to the green is not a GIR")
	}
}
