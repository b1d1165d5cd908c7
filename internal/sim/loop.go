package sim

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// StepFunc advances a state by one tick.
type StepFunc[S any] func(S, core.InputFrame) S

// RenderFunc draws a state. It must not mutate it.
type RenderFunc[S any] func(S, *core.Screen)

// Loop couples a state value with its step and render functions and a clock.
type Loop[S any] struct {
	state   S
	clock   *Clock
	step    StepFunc[S]
	render  RenderFunc[S]
	pending core.InputFrame
}

// NewLoop creates a loop starting from the given state.
func NewLoop[S any](initial S, clock *Clock, step StepFunc[S], render RenderFunc[S]) *Loop[S] {
	return &Loop[S]{
		state:  initial,
		clock:  clock,
		step:   step,
		render: render,
	}
}

// Frame advances the loop by one rendered frame and returns the ticks run.
// Input is held until the next tick and handed to that tick only; later
// ticks in the same frame see an empty frame so a key press is never
// applied twice.
func (l *Loop[S]) Frame(in core.InputFrame, dt time.Duration) int {
	for _, a := range in.Order {
		l.pending.Set(a)
	}

	n := l.clock.Advance(dt)
	for i := 0; i < n; i++ {
		if i == 0 {
			l.state = l.step(l.state, l.pending)
			l.pending = core.InputFrame{}
			continue
		}
		l.state = l.step(l.state, core.InputFrame{})
	}
	return n
}

// Flush discards input that no tick has consumed yet.
func (l *Loop[S]) Flush() {
	l.pending = core.InputFrame{}
}

// Render draws the current state onto dst.
func (l *Loop[S]) Render(dst *core.Screen) {
	if l.render != nil {
		l.render(l.state, dst)
	}
}

// State returns the current state value.
func (l *Loop[S]) State() S {
	return l.state
}

// Replace swaps in a new state, e.g. after a restart.
func (l *Loop[S]) Replace(s S) {
	l.state = s
	l.Flush()
}

// Clock exposes the loop's clock for pause and speed control.
func (l *Loop[S]) Clock() *Clock {
	return l.clock
}
