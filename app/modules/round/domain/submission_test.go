package rounddomain

import (
	"encoding/json"
	"testing"
)

func TestHoleSubmissionEntry(t *testing.T) {
	var sub HoleSubmission
	body := `{"number":3,"par":4,"shots":[
		{"type":"tee","outcome":"fairway"},
		{"type":"approach","lie":"fairway","distance":120,"outcome":"green-center"},
		{"type":"chip"},
		{"type":"putt","distance":3,"outcome":"in"}
	]}`
	if err := json.Unmarshal([]byte(body), &sub); err != nil {
		t.Fatal(err)
	}

	entry, err := sub.Entry()
	if err != nil {
		t.Fatal(err)
	}
	if len(entry.Shots) != 3 {
		t.Fatalf("expected 3 valid shots, got %d", len(entry.Shots))
	}

	h := AggregateHole(entry)
	if h.Strokes != 3 || h.Putts != 1 {
		t.Fatalf("unexpected hole %+v", h)
	}
}

func TestHoleSubmissionEntryRejectsNonArray(t *testing.T) {
	sub := HoleSubmission{Number: 1, Par: 4, Shots: json.RawMessage(`{"type":"tee"}`)}
	if _, err := sub.Entry(); err == nil {
		t.Fatal("expected an error for a non-array shots document")
	}
}
