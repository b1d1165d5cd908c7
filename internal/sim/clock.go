// Package sim drives game simulations: a clock that turns frame time into
// discrete steps, a generic loop around a step function, and a scheduler for
// one-shot expiry events that belong to a play session.
package sim

import "time"

// MaxFrame caps the elapsed time accepted for a single frame so a stalled
// terminal does not produce a burst of steps afterwards.
const MaxFrame = 250 * time.Millisecond

// ClampFrame bounds a frame's elapsed time to [0, MaxFrame].
func ClampFrame(dt time.Duration) time.Duration {
	return min(max(dt, 0), MaxFrame)
}

// Mode selects how a Clock converts frames into steps.
type Mode int

const (
	// ModeFrame runs exactly one step per rendered frame.
	ModeFrame Mode = iota
	// ModeFixed runs one step per elapsed Interval, regardless of frame rate.
	ModeFixed
)

// Clock turns elapsed frame time into a number of whole simulation steps.
type Clock struct {
	mode     Mode
	interval time.Duration
	acc      time.Duration
	paused   bool
	steps    uint64
}

// NewFrameClock returns a clock that steps once per frame.
func NewFrameClock() *Clock {
	return &Clock{mode: ModeFrame}
}

// NewFixedClock returns a clock that steps once per interval.
// A non-positive interval falls back to one step per frame.
func NewFixedClock(interval time.Duration) *Clock {
	if interval <= 0 {
		return NewFrameClock()
	}
	return &Clock{mode: ModeFixed, interval: interval}
}

// Mode returns the clock's scheduling mode.
func (c *Clock) Mode() Mode {
	return c.mode
}

// Interval returns the current step interval (zero for frame clocks).
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Accumulated returns time banked towards the next fixed step.
func (c *Clock) Accumulated() time.Duration {
	return c.acc
}

// Steps returns the total number of steps issued since the last Reset.
func (c *Clock) Steps() uint64 {
	return c.steps
}

// Paused reports whether stepping is suspended.
func (c *Clock) Paused() bool {
	return c.paused
}

// Advance feeds one frame's elapsed time and returns how many steps to run.
// Fixed clocks never return a partial step; the remainder stays banked.
func (c *Clock) Advance(dt time.Duration) int {
	if c.paused {
		return 0
	}
	dt = ClampFrame(dt)

	if c.mode == ModeFrame {
		c.steps++
		return 1
	}

	c.acc += dt
	n := int(c.acc / c.interval)
	c.acc -= time.Duration(n) * c.interval
	c.steps += uint64(n)
	return n
}

// SetInterval replaces the step interval for all later steps.
// Banked time is kept as-is, not rescaled.
func (c *Clock) SetInterval(d time.Duration) {
	if c.mode != ModeFixed || d <= 0 {
		return
	}
	c.interval = d
}

// Pause suspends stepping.
func (c *Clock) Pause() {
	c.paused = true
}

// Resume restarts stepping. Time banked before or during the pause is
// discarded so missed steps are never replayed.
func (c *Clock) Resume() {
	c.paused = false
	c.acc = 0
}

// Reset clears banked time, the step counter and the paused flag.
func (c *Clock) Reset() {
	c.acc = 0
	c.steps = 0
	c.paused = false
}
