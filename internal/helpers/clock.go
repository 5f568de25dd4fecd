package helpers

import "time"

// Clock abstracts wall-clock reads so billing-date and proration math can be
// driven by a fixed time in tests.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	Fixed time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Fixed
}
