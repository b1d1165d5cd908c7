package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

type counter struct {
	ticks   int
	presses int
}

func countStep(s counter, in core.InputFrame) counter {
	s.ticks++
	if in.Has(core.ActionUp) {
		s.presses++
	}
	return s
}

func TestLoopDeliversInputToFirstTickOnly(t *testing.T) {
	l := NewLoop(counter{}, NewFixedClock(10*time.Millisecond), countStep, nil)

	var in core.InputFrame
	in.Set(core.ActionUp)

	n := l.Frame(in, 35*time.Millisecond)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, l.State().ticks)
	assert.Equal(t, 1, l.State().presses)
}

func TestLoopHoldsInputUntilNextTick(t *testing.T) {
	l := NewLoop(counter{}, NewFixedClock(100*time.Millisecond), countStep, nil)

	var in core.InputFrame
	in.Set(core.ActionUp)

	assert.Equal(t, 0, l.Frame(in, 60*time.Millisecond))
	assert.Equal(t, 0, l.State().presses)

	assert.Equal(t, 1, l.Frame(core.InputFrame{}, 60*time.Millisecond))
	assert.Equal(t, 1, l.State().presses)

	assert.Equal(t, 1, l.Frame(core.InputFrame{}, 100*time.Millisecond))
	assert.Equal(t, 1, l.State().presses, "held input is consumed once")
}

func TestLoopFlushDropsHeldInput(t *testing.T) {
	l := NewLoop(counter{}, NewFixedClock(100*time.Millisecond), countStep, nil)

	var in core.InputFrame
	in.Set(core.ActionUp)
	l.Frame(in, 10*time.Millisecond)
	l.Flush()

	l.Frame(core.InputFrame{}, 100*time.Millisecond)
	assert.Equal(t, 0, l.State().presses)
}

func TestLoopRenderAndReplace(t *testing.T) {
	rendered := 0
	l := NewLoop(counter{}, NewFrameClock(), countStep, func(s counter, dst *core.Screen) {
		rendered = s.ticks
		dst.DrawText(0, 0, "ok")
	})

	l.Frame(core.InputFrame{}, time.Millisecond)
	l.Frame(core.InputFrame{}, time.Millisecond)

	scr := core.NewScreen(4, 1)
	l.Render(scr)
	assert.Equal(t, 2, rendered)
	assert.Equal(t, "ok  ", scr.Row(0))

	l.Replace(counter{})
	assert.Equal(t, 0, l.State().ticks)
}

func TestLoopPausedClockFreezesState(t *testing.T) {
	l := NewLoop(counter{}, NewFrameClock(), countStep, nil)
	l.Clock().Pause()

	assert.Equal(t, 0, l.Frame(core.InputFrame{}, time.Millisecond))
	assert.Equal(t, 0, l.State().ticks)
}
