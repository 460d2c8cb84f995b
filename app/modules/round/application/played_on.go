package roundservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// maxFutureSkew lets a calendar date entered in a timezone ahead of UTC
// through the "not in the future" check.
const maxFutureSkew = 24 * time.Hour

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
}

func newDateParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// parsePlayedOn accepts an RFC3339 timestamp, an ISO calendar date or a
// natural phrase relative to the service clock. Empty input means now.
func (s *RoundService) parsePlayedOn(raw string) (time.Time, error) {
	now := s.clock.Now().UTC()
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now, nil
	}

	parsed, ok := parseLayouts(raw)
	if !ok {
		r, err := s.dates.Parse(strings.ToLower(raw), now)
		if err != nil || r == nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
		}
		parsed = r.Time
	}

	if parsed.After(now.Add(maxFutureSkew)) {
		return time.Time{}, fmt.Errorf("%w: %q is in the future", ErrInvalidDate, raw)
	}
	return parsed.UTC(), nil
}

func parseLayouts(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
