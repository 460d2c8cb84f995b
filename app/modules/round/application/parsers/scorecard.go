package parsers

import (
	"fmt"
	"strconv"
	"strings"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
)

// Row labels recognised in the first column. Par and Score are required;
// without a Hole row the columns are numbered from 1.
const (
	rowHole    = "hole"
	rowPar     = "par"
	rowYards   = "yards"
	rowScore   = "score"
	rowPutts   = "putts"
	rowFairway = "fairway"
	rowPin     = "pin"
)

var rowAliases = map[string]string{
	"hole":    rowHole,
	"holes":   rowHole,
	"#":       rowHole,
	"par":     rowPar,
	"yards":   rowYards,
	"yardage": rowYards,
	"score":   rowScore,
	"strokes": rowScore,
	"putts":   rowPutts,
	"fairway": rowFairway,
	"fir":     rowFairway,
	"pin":     rowPin,
}

// parseRows reads a row-oriented scorecard: one labelled row per field,
// one column per hole.
func parseRows(rows [][]string) ([]rounddomain.HoleSubmission, error) {
	labelled := make(map[string][]string)
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		key, ok := rowAliases[strings.ToLower(strings.TrimSpace(row[0]))]
		if !ok {
			continue
		}
		if _, seen := labelled[key]; !seen {
			labelled[key] = trimTrailingEmpty(row[1:])
		}
	}
	if len(labelled) == 0 {
		return nil, ErrEmptyScorecard
	}

	pars, ok := labelled[rowPar]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRow, rowPar)
	}
	scores, ok := labelled[rowScore]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRow, rowScore)
	}

	holes := make([]rounddomain.HoleSubmission, 0, len(pars))
	for col := range pars {
		number := col + 1
		if nums := labelled[rowHole]; col < len(nums) {
			n, err := parseInt(rowHole, col, nums[col])
			if err != nil {
				return nil, err
			}
			number = n
		}

		par, err := parseInt(rowPar, col, pars[col])
		if err != nil {
			return nil, err
		}
		strokes, err := parseInt(rowScore, col, cell(scores, col))
		if err != nil {
			return nil, err
		}

		manual := &rounddomain.ManualScore{Strokes: strokes}
		if putts := labelled[rowPutts]; cell(putts, col) != "" {
			if manual.Putts, err = parseInt(rowPutts, col, putts[col]); err != nil {
				return nil, err
			}
		}
		if fw := labelled[rowFairway]; cell(fw, col) != "" {
			if manual.Fairway, err = parseFairway(col, fw[col]); err != nil {
				return nil, err
			}
		}

		h := rounddomain.HoleSubmission{Number: number, Par: par, Manual: manual}
		if yards := labelled[rowYards]; cell(yards, col) != "" {
			y, err := parseInt(rowYards, col, yards[col])
			if err != nil {
				return nil, err
			}
			h.Yardage = &y
		}
		if pins := labelled[rowPin]; cell(pins, col) != "" {
			pin := rounddomain.PinPosition(strings.ToLower(strings.TrimSpace(pins[col])))
			if !pin.Valid() {
				return nil, fmt.Errorf("%w: pin %q in column %d", ErrInvalidCell, pins[col], col+2)
			}
			h.Pin = &pin
		}
		holes = append(holes, h)
	}
	return holes, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func trimTrailingEmpty(row []string) []string {
	end := len(row)
	for end > 0 && strings.TrimSpace(row[end-1]) == "" {
		end--
	}
	return row[:end]
}

func parseInt(label string, col int, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q in column %d", ErrInvalidCell, label, raw, col+2)
	}
	return v, nil
}

func parseFairway(col int, raw string) (rounddomain.FairwayResult, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "keep", "k", "hit", "y", "yes":
		return rounddomain.FairwayKeep, nil
	case "left", "l":
		return rounddomain.FairwayLeft, nil
	case "right", "r":
		return rounddomain.FairwayRight, nil
	default:
		return "", fmt.Errorf("%w: fairway %q in column %d", ErrInvalidCell, raw, col+2)
	}
}
