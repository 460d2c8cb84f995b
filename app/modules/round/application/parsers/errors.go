package parsers

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported scorecard format")
	ErrEmptyScorecard    = errors.New("scorecard is empty")
	ErrMissingRow        = errors.New("scorecard row missing")
	ErrInvalidCell       = errors.New("invalid scorecard cell")
)
