package roundservice

import "errors"

// Domain errors for the round service.
// These represent validation failures that handlers treat as normal
// outcomes (publish a failure event, ack the message) rather than retrying.
var (
	ErrMissingClub       = errors.New("club is required")
	ErrMissingPlayer     = errors.New("player is required")
	ErrMissingCourse     = errors.New("course id or name is required")
	ErrInvalidHoleCount  = errors.New("a round must have 9 or 18 holes")
	ErrInvalidHoleNumber = errors.New("hole number must be between 1 and 18")
	ErrDuplicateHole     = errors.New("hole recorded twice")
	ErrInvalidPar        = errors.New("par must be between 3 and 6")
	ErrInvalidPin        = errors.New("unknown pin position")
	ErrInvalidShots      = errors.New("shot detail is not a JSON array")
	ErrInvalidScore      = errors.New("invalid score")
	ErrInvalidDate       = errors.New("invalid played-on date")
	ErrInvalidScorecard  = errors.New("invalid scorecard")

	// ErrRoundNotFound indicates a round does not exist in the caller's club.
	ErrRoundNotFound = errors.New("round not found")
)
