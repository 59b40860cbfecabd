package clock

import "time"

// Clock is the wall-clock source for attendance events. Injected so the
// state machine can be exercised at fixed instants in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed struct {
	Instant time.Time
}

func NewFixed(t time.Time) Fixed {
	return Fixed{Instant: t}
}

func (f Fixed) Now() time.Time {
	return f.Instant
}
