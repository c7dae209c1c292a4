package clock

import "time"

// Clock is the time source for cache expiry, date defaults and index timestamps
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// System reads the wall clock
type System struct{}

// New returns the wall clock
func New() System {
	return System{}
}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Since(t time.Time) time.Duration {
	return time.Since(t)
}
