package clock

import "time"

// Clock provides the current time. The store takes a Clock rather than
// calling time.Now directly so that duration calculations for open
// entries and merges are deterministic under test.
type Clock interface {
	Now() time.Time
}

// System is a Clock backed by the system clock.
type System struct{}

// Now returns the current system time.
func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock that always returns the same instant. Intended for
// tests.
type Fixed struct {
	Time time.Time
}

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return f.Time
}
