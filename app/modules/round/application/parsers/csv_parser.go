package parsers

import (
	"bytes"
	"encoding/csv"
	"fmt"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
)

// CSVParser reads a comma separated scorecard with the same row layout as
// the XLSX form.
type CSVParser struct{}

func NewCSVParser() *CSVParser { return &CSVParser{} }

func (p *CSVParser) Parse(data []byte) ([]rounddomain.HoleSubmission, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return parseRows(rows)
}
