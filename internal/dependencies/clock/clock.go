package clock

import "time"

// Clock stamps game and move times. Tests use mocks.MockClock.
type Clock interface {
	Now() time.Time
}

// UTCClock reads the system clock
type UTCClock struct{}

// New creates a UTCClock
func New() *UTCClock {
	return &UTCClock{}
}

// Now returns the wall time in UTC with the monotonic reading stripped,
// so stored and reloaded timestamps compare equal
func (c *UTCClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
