package clock

import "time"

// Clock provides the current instant. Tests swap in a fixed implementation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (fn ClockFunc) Now() time.Time { return fn() }
