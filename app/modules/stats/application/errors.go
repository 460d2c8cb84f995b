package statsservice

import (
	"errors"

	statsdomain "github.com/Black-And-White-Club/fairway/app/modules/stats/domain"
)

var (
	ErrMissingClub          = errors.New("club id is required")
	ErrMissingCourse        = errors.New("course is required")
	ErrUnknownDistanceChart = errors.New("unknown distance chart")
)

// IsQueryFailure reports whether err is the caller's mistake rather than an
// infrastructure problem.
func IsQueryFailure(err error) bool {
	return errors.Is(err, statsdomain.ErrUnknownMetric) ||
		errors.Is(err, statsdomain.ErrMetricNotRankable) ||
		errors.Is(err, statsdomain.ErrNoValue) ||
		errors.Is(err, statsdomain.ErrPlayerNotFound) ||
		errors.Is(err, ErrMissingClub) ||
		errors.Is(err, ErrMissingCourse) ||
		errors.Is(err, ErrUnknownDistanceChart)
}
