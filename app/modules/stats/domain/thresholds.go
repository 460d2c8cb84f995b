package statsdomain

const (
	// DefaultRecentRounds is how many of a player's latest rounds feed MemberStats.
	DefaultRecentRounds = 5
	// DefaultSandSaveMaxYards is the furthest bunker shot that still counts as a
	// sand-save opportunity.
	DefaultSandSaveMaxYards = 50
	// DefaultDriveMinYards and DefaultDriveMaxYards bound a plausible driving
	// distance estimate; values on or outside either bound are discarded.
	DefaultDriveMinYards = 50
	DefaultDriveMaxYards = 400
)

// Thresholds holds the constants that shape the detail-dependent metrics.
// Changing any of them changes historical statistics.
type Thresholds struct {
	RecentRounds     int `yaml:"recent_rounds"`
	SandSaveMaxYards int `yaml:"sand_save_max_yards"`
	DriveMinYards    int `yaml:"drive_min_yards"`
	DriveMaxYards    int `yaml:"drive_max_yards"`
}

// DefaultThresholds returns the thresholds used when nothing is configured.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RecentRounds:     DefaultRecentRounds,
		SandSaveMaxYards: DefaultSandSaveMaxYards,
		DriveMinYards:    DefaultDriveMinYards,
		DriveMaxYards:    DefaultDriveMaxYards,
	}
}

// withDefaults fills zero fields from DefaultThresholds.
func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.RecentRounds <= 0 {
		t.RecentRounds = d.RecentRounds
	}
	if t.SandSaveMaxYards <= 0 {
		t.SandSaveMaxYards = d.SandSaveMaxYards
	}
	if t.DriveMinYards <= 0 {
		t.DriveMinYards = d.DriveMinYards
	}
	if t.DriveMaxYards <= 0 {
		t.DriveMaxYards = d.DriveMaxYards
	}
	return t
}

// Calculator folds rounds into statistics. The zero value is not usable;
// construct one with NewCalculator. A Calculator holds no mutable state and
// may be shared between goroutines.
type Calculator struct {
	thresholds Thresholds
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithThresholds overrides the default thresholds. Zero fields keep their defaults.
func WithThresholds(t Thresholds) Option {
	return func(c *Calculator) {
		c.thresholds = t.withDefaults()
	}
}

// NewCalculator creates a Calculator.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{thresholds: DefaultThresholds()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Thresholds returns the thresholds in effect.
func (c *Calculator) Thresholds() Thresholds { return c.thresholds }
