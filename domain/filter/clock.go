package filter

import "time"

// Clock supplies the current time for relative-date conditions such as
// "today" and "overdue".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// fixedClock always reports the same instant.
type fixedClock struct {
	at time.Time
}

// NewFixedClock returns a Clock frozen at the given instant. Used by tests
// and by callers replaying a filter at a known time.
func NewFixedClock(at time.Time) Clock {
	return fixedClock{at: at}
}

// Now returns the frozen instant.
func (c fixedClock) Now() time.Time { return c.at }
