package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Tone describes a short synthesized cue: a list of frequency steps, an
// optional exponential glide to a final frequency, and a gain that decays
// exponentially to 1% over the duration.
type Tone struct {
	Wave     Wave
	Steps    []Step
	GlideTo  float64
	Duration time.Duration
	Gain     float64
}

// Step switches the oscillator to Freq at offset At.
type Step struct {
	At   time.Duration
	Freq float64
}

func steps(freqs ...float64) []Step {
	out := make([]Step, len(freqs))
	for i, f := range freqs {
		out[i] = Step{At: time.Duration(i) * 100 * time.Millisecond, Freq: f}
	}
	return out
}

// tones maps cues to their recipes.
var tones = map[Event]Tone{
	EventMove:     {Wave: WaveSine, Steps: []Step{{0, 200}}, Duration: 50 * time.Millisecond, Gain: 0.05},
	EventEat:      {Wave: WaveSine, Steps: []Step{{0, 523.25}, {50 * time.Millisecond, 659.25}}, Duration: 100 * time.Millisecond, Gain: 0.1},
	EventHit:      {Wave: WaveSaw, Steps: []Step{{0, 200}}, GlideTo: 50, Duration: 150 * time.Millisecond, Gain: 0.15},
	EventRotate:   {Wave: WaveSine, Steps: []Step{{0, 300}, {50 * time.Millisecond, 400}}, Duration: 100 * time.Millisecond, Gain: 0.1},
	EventLock:     {Wave: WaveSine, Steps: []Step{{0, 150}}, Duration: 100 * time.Millisecond, Gain: 0.1},
	EventDrop:     {Wave: WaveSine, Steps: []Step{{0, 200}}, GlideTo: 50, Duration: 200 * time.Millisecond, Gain: 0.15},
	EventClear:    {Wave: WaveSquare, Steps: steps(523, 659, 784), Duration: 300 * time.Millisecond, Gain: 0.1},
	EventPower:    {Wave: WaveSquare, Steps: []Step{{0, 200}}, GlideTo: 800, Duration: 300 * time.Millisecond, Gain: 0.1},
	EventScore:    {Wave: WaveSquare, Steps: steps(200, 150), Duration: 200 * time.Millisecond, Gain: 0.1},
	EventLevelUp:  {Wave: WaveSquare, Steps: steps(440, 554.37, 659.25, 880), Duration: 400 * time.Millisecond, Gain: 0.08},
	EventWin:      {Wave: WaveSine, Steps: stepsEvery(150*time.Millisecond, 523.25, 659.25, 783.99, 1046.5), Duration: 600 * time.Millisecond, Gain: 0.1},
	EventDeath:    {Wave: WaveSaw, Steps: []Step{{0, 300}}, GlideTo: 50, Duration: 500 * time.Millisecond, Gain: 0.15},
	EventGameOver: {Wave: WaveSaw, Steps: []Step{{0, 200}}, GlideTo: 50, Duration: 500 * time.Millisecond, Gain: 0.15},
	EventStart:    {Wave: WaveSine, Steps: steps(262, 330, 392, 523), Duration: 400 * time.Millisecond, Gain: 0.1},
	EventEatGhost: {Wave: WaveSine, Steps: steps(300, 600, 900), Duration: 300 * time.Millisecond, Gain: 0.1},
}

func stepsEvery(every time.Duration, freqs ...float64) []Step {
	out := make([]Step, len(freqs))
	for i, f := range freqs {
		out[i] = Step{At: time.Duration(i) * every, Freq: f}
	}
	return out
}

// defaultTone plays for cues without a recipe.
var defaultTone = Tone{Wave: WaveSine, Steps: []Step{{0, 440}}, Duration: 100 * time.Millisecond, Gain: 0.1}

// ToneFor returns the recipe for e.
func ToneFor(e Event) Tone {
	if t, ok := tones[e]; ok {
		return t
	}
	return defaultTone
}

// Streamer renders the tone at the given sample rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{tone: t, rate: rate, total: rate.N(t.Duration)}
}

type toneStreamer struct {
	tone     Tone
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
}

func (s *toneStreamer) freqAt(pos int) float64 {
	at := s.rate.D(pos)
	f := 440.0
	for _, st := range s.tone.Steps {
		if st.At <= at {
			f = st.Freq
		}
	}
	if s.tone.GlideTo > 0 && f > 0 && s.total > 0 {
		// exponential ramp from the last step to GlideTo
		frac := float64(pos) / float64(s.total)
		f *= math.Pow(s.tone.GlideTo/f, frac)
	}
	return f
}

func (s *toneStreamer) gainAt(pos int) float64 {
	if s.total == 0 {
		return 0
	}
	frac := float64(pos) / float64(s.total)
	return s.tone.Gain * math.Pow(0.01/max(s.tone.Gain, 0.01), frac)
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.tone.Wave {
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		default:
			val = math.Sin(2 * math.Pi * s.phase)
		}
		val *= s.gainAt(s.position)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freqAt(s.position) / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }
