package rounddb

import "errors"

// ErrNotFound is returned when a round does not exist.
var ErrNotFound = errors.New("round not found")
