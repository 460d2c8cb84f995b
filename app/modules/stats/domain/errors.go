package statsdomain

import "errors"

var (
	ErrUnknownMetric     = errors.New("unknown metric")
	ErrMetricNotRankable = errors.New("metric is not rankable")
	ErrNoValue           = errors.New("player has no value for metric")
	ErrPlayerNotFound    = errors.New("player has no rounds")
)
