// Package ticktimer provides tick-based deadlines. A timer is a target tick
// compared against the simulation clock, so it replicates as plain data and
// expires identically on every peer.
package ticktimer

import "math"

// Clock is the fixed-step simulation clock.
type Clock struct {
	Tick int64
	Rate int // ticks per second
}

// NewClock returns a clock at tick zero.
func NewClock(rate int) *Clock {
	if rate <= 0 {
		rate = 60
	}
	return &Clock{Rate: rate}
}

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() { c.Tick++ }

// DeltaTime is the length of one tick in seconds.
func (c *Clock) DeltaTime() float64 { return 1 / float64(c.Rate) }

// Seconds is the simulation time at the current tick.
func (c *Clock) Seconds() float64 { return float64(c.Tick) / float64(c.Rate) }

// Ticks converts a duration in seconds to a whole number of ticks, rounding up.
func (c *Clock) Ticks(seconds float64) int64 {
	return int64(math.Ceil(seconds*float64(c.Rate) - 1e-9))
}

// Timer is a deadline. The zero value is not running.
type Timer struct {
	Target  int64
	Running bool
}

// FromSeconds starts a timer that expires seconds from now.
func FromSeconds(c *Clock, seconds float64) Timer {
	return Timer{Target: c.Tick + c.Ticks(seconds), Running: true}
}

// IsRunning reports whether the timer has been started and not reset.
func (t Timer) IsRunning() bool { return t.Running }

// Expired reports whether a running timer has reached its target.
func (t Timer) Expired(c *Clock) bool { return t.Running && c.Tick >= t.Target }

// IsActive reports whether the timer is running and not yet expired.
func (t Timer) IsActive(c *Clock) bool { return t.Running && c.Tick < t.Target }

// ExpiredOrNotRunning is the negation of IsActive.
func (t Timer) ExpiredOrNotRunning(c *Clock) bool { return !t.IsActive(c) }

// RemainingTicks returns the ticks left, or false when not running.
func (t Timer) RemainingTicks(c *Clock) (int64, bool) {
	if !t.Running {
		return 0, false
	}
	if c.Tick >= t.Target {
		return 0, true
	}
	return t.Target - c.Tick, true
}

// RemainingTime returns the seconds left, or false when not running.
func (t Timer) RemainingTime(c *Clock) (float64, bool) {
	n, ok := t.RemainingTicks(c)
	if !ok {
		return 0, false
	}
	return float64(n) / float64(c.Rate), true
}
