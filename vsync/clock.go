package vsync

import "time"

// Clock abstracts wall-clock access so pacing behavior is testable
// with a deterministic clock.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// systemClock is the production clock.
type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }
