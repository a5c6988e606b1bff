package entity

import "time"

// Clock is the time source used by aggregates for created_at/updated_at.
// Factories take it explicitly so tests can pin time without touching
// process-wide state.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall-clock implementation used by production wiring.
var SystemClock Clock = ClockFunc(time.Now)
