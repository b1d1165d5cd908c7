package sim

import (
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Run is the lifecycle of one play-through: not started, running or paused,
// plus a terminal game-over flag. It owns pausing the clock and invalidating
// the scheduler so games only decide when a transition happens.
type Run struct {
	clock  *Clock
	timers *Scheduler
	state  core.RunState
	over   bool
}

// NewRun ties a run state machine to a clock and a scheduler.
func NewRun(clock *Clock, timers *Scheduler) *Run {
	return &Run{clock: clock, timers: timers}
}

// State returns the run state.
func (r *Run) State() core.RunState {
	return r.state
}

// Over reports whether the run ended in game over.
func (r *Run) Over() bool {
	return r.over
}

// Active reports whether ticks and timers should advance.
func (r *Run) Active() bool {
	return r.state == core.RunRunning && !r.over
}

// Start begins a fresh run. Pending timers from any earlier run are dropped
// and the clock starts from zero.
func (r *Run) Start() {
	r.timers.Reset()
	r.clock.Reset()
	r.state = core.RunRunning
	r.over = false
}

// Stop returns to the not-started state and clears everything pending.
func (r *Run) Stop() {
	r.timers.Reset()
	r.clock.Reset()
	r.state = core.RunNotStarted
	r.over = false
}

// Pause suspends a running run.
func (r *Run) Pause() {
	if r.state != core.RunRunning || r.over {
		return
	}
	r.state = core.RunPaused
	r.clock.Pause()
}

// Resume continues a paused run without replaying missed ticks.
func (r *Run) Resume() {
	if r.state != core.RunPaused {
		return
	}
	r.state = core.RunRunning
	r.clock.Resume()
}

// TogglePause flips between running and paused.
func (r *Run) TogglePause() {
	switch r.state {
	case core.RunRunning:
		r.Pause()
	case core.RunPaused:
		r.Resume()
	}
}

// End marks the run as over. Outstanding timers are cancelled and the
// scheduler moves to a new session so anything scheduled later by a stale
// callback is ignored too.
func (r *Run) End() {
	r.over = true
	r.timers.CancelAll()
	r.timers.NewSession()
}

// Advance moves the run's timers forward by one frame's clamped elapsed
// time and returns that time. It returns zero when the run is not active.
func (r *Run) Advance(dt time.Duration) time.Duration {
	if !r.Active() {
		return 0
	}
	dt = ClampFrame(dt)
	r.timers.Advance(dt)
	return dt
}
