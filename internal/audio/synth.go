package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	queueSize  = 32
)

// Synth plays cues on the default audio device. Notify hands the cue to a
// playback goroutine; when the queue is full the cue is dropped.
type Synth struct {
	queue  chan Event
	done   chan struct{}
	mixer  *beep.Mixer
	logger *log.Logger

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewSynth opens the audio device and starts the playback goroutine.
func NewSynth(logger *log.Logger) (*Synth, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open device: %w", err)
	}

	s := &Synth{
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	speaker.Play(s.mixer)

	s.wg.Add(1)
	go s.run()
	return s, nil
}

// Notify implements Sink.
func (s *Synth) Notify(e Event) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.queue <- e:
	default:
		s.logger.Debug("audio queue full, dropping cue", "event", e)
	}
}

func (s *Synth) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case e := <-s.queue:
			st := ToneFor(e).Streamer(sampleRate)
			speaker.Lock()
			s.mixer.Add(st)
			speaker.Unlock()
		}
	}
}

// Close stops playback and releases the device.
func (s *Synth) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		speaker.Clear()
		speaker.Close()
	})
}
