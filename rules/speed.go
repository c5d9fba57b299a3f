package rules

import "time"

// SpeedPolicy shortens the tick interval every time the snake grows, down to
// a floor.
type SpeedPolicy struct {
	Step  time.Duration
	Floor time.Duration
}

// OnGrowth returns the interval to use after a growth event.
func (p SpeedPolicy) OnGrowth(current time.Duration) time.Duration {
	next := current - p.Step
	if next < p.Floor {
		return p.Floor
	}
	return next
}
