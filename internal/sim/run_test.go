package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

func newTestRun() (*Run, *Clock, *Scheduler) {
	c := NewFixedClock(100 * time.Millisecond)
	s := NewScheduler(nil)
	return NewRun(c, s), c, s
}

func TestRunLifecycle(t *testing.T) {
	r, c, _ := newTestRun()
	assert.Equal(t, core.RunNotStarted, r.State())
	assert.False(t, r.Active())

	r.Start()
	assert.Equal(t, core.RunRunning, r.State())
	assert.True(t, r.Active())

	r.TogglePause()
	assert.Equal(t, core.RunPaused, r.State())
	assert.True(t, c.Paused())

	r.TogglePause()
	assert.Equal(t, core.RunRunning, r.State())
	assert.False(t, c.Paused())

	r.End()
	assert.True(t, r.Over())
	assert.False(t, r.Active())

	r.Pause()
	assert.Equal(t, core.RunRunning, r.State(), "a finished run cannot be paused")

	r.Stop()
	assert.Equal(t, core.RunNotStarted, r.State())
	assert.False(t, r.Over())
}

func TestRunAdvanceOnlyWhileActive(t *testing.T) {
	r, _, s := newTestRun()
	fired := 0
	r.Start()
	s.After(200*time.Millisecond, "t", func() { fired++ })

	r.Pause()
	assert.Equal(t, time.Duration(0), r.Advance(time.Second))
	assert.Equal(t, 0, fired)

	r.Resume()
	assert.Equal(t, MaxFrame, r.Advance(time.Second))
	assert.Equal(t, 1, fired)
}

func TestRunEndDropsTimers(t *testing.T) {
	r, _, s := newTestRun()
	r.Start()
	fired := false
	s.After(10*time.Millisecond, "power", func() { fired = true })

	r.End()
	assert.Equal(t, 0, s.Pending())

	r.Start()
	r.Advance(time.Second)
	assert.False(t, fired)
}

func TestRunStartInvalidatesPreviousSession(t *testing.T) {
	r, _, s := newTestRun()
	r.Start()
	first := s.Session()

	r.Start()
	assert.NotEqual(t, first, s.Session())
	assert.Equal(t, time.Duration(0), s.Now())
}
