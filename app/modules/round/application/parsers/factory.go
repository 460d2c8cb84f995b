// Package parsers reads uploaded scorecards into round submissions.
package parsers

import (
	"fmt"
	"path/filepath"
	"strings"

	rounddomain "github.com/Black-And-White-Club/fairway/app/modules/round/domain"
)

// Parser turns an uploaded file into the holes of one round.
type Parser interface {
	Parse(data []byte) ([]rounddomain.HoleSubmission, error)
}

// Factory picks a parser from the upload's file name.
type Factory struct{}

// NewFactory creates a parser factory.
func NewFactory() *Factory {
	return &Factory{}
}

// GetParser returns the parser for filename's extension.
func (f *Factory) GetParser(filename string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return NewXLSXParser(), nil
	case ".csv":
		return NewCSVParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
}
