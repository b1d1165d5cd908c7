package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	assert.Equal(t, Event(""), r.Last())

	r.Notify(EventEat)
	r.Notify(EventEat)
	r.Notify(EventPower)

	assert.Equal(t, []Event{EventEat, EventEat, EventPower}, r.Events())
	assert.Equal(t, 2, r.Count(EventEat))
	assert.Equal(t, EventPower, r.Last())

	r.Reset()
	assert.Empty(t, r.Events())
}

func TestOrNop(t *testing.T) {
	assert.IsType(t, Nop{}, OrNop(nil))

	r := &Recorder{}
	assert.Same(t, r, OrNop(r))
}

func TestEveryEventHasTone(t *testing.T) {
	for _, e := range Events {
		tone, ok := tones[e]
		require.True(t, ok, "missing tone for %s", e)
		assert.NotEmpty(t, tone.Steps, e)
		assert.True(t, tone.Duration > 0, e)
	}
}

func TestToneForUnknownEvent(t *testing.T) {
	assert.Equal(t, defaultTone, ToneFor("bogus"))
}

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneStreamerLengthAndGain(t *testing.T) {
	rate := beep.SampleRate(8000)

	for _, e := range []Event{EventEat, EventDeath, EventClear, EventPower} {
		tone := ToneFor(e)
		total, peak := drain(tone.Streamer(rate))

		assert.Equal(t, rate.N(tone.Duration), total, e)
		assert.LessOrEqual(t, peak, tone.Gain+1e-9, e)
		assert.Positive(t, peak, e)
	}
}

func TestToneGlideReachesTarget(t *testing.T) {
	rate := beep.SampleRate(1000)
	tone := Tone{Steps: []Step{{0, 200}}, GlideTo: 50, Duration: time.Second, Gain: 0.1}
	st := tone.Streamer(rate).(*toneStreamer)

	assert.InDelta(t, 200, st.freqAt(0), 1e-9)
	assert.InDelta(t, 100, st.freqAt(500), 1e-6)
	assert.InDelta(t, 50, st.freqAt(1000), 1e-6)
}

func TestToneStepsSwitchFrequency(t *testing.T) {
	rate := beep.SampleRate(1000)
	st := ToneFor(EventEat).Streamer(rate).(*toneStreamer)

	assert.InDelta(t, 523.25, st.freqAt(0), 1e-9)
	assert.InDelta(t, 659.25, st.freqAt(60), 1e-9)
}
