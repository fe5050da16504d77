package clock

import "time"

// Clocker abstracts time so callers can replace real time in tests.
type Clocker interface {
	Now() time.Time
}

// TimeClocker is the production clock implementation backed by time.Now.
type TimeClocker struct{}

// New returns a TimeClocker that reads the current system time.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now returns the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed struct {
	at time.Time
}

// NewFixed returns a clock frozen at at.
func NewFixed(at time.Time) *Fixed {
	return &Fixed{at: at}
}

// NewFixedUnix returns a clock frozen at the given epoch second.
func NewFixedUnix(sec int64) *Fixed {
	return &Fixed{at: time.Unix(sec, 0).UTC()}
}

// Now returns the frozen instant.
func (f *Fixed) Now() time.Time {
	return f.at
}
