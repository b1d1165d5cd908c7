// Package audio carries game sound cues from the simulation to a player.
// Games only ever call Sink.Notify; what happens next is up to the sink.
package audio

import "sync"

// Event names a sound cue.
type Event string

const (
	EventStart    Event = "start"
	EventMove     Event = "move"
	EventEat      Event = "eat"
	EventPower    Event = "power"
	EventEatGhost Event = "eatghost"
	EventDeath    Event = "death"
	EventGameOver Event = "gameover"
	EventWin      Event = "win"
	EventLevelUp  Event = "levelup"
	EventRotate   Event = "rotate"
	EventDrop     Event = "drop"
	EventLock     Event = "lock"
	EventClear    Event = "clear"
	EventHit      Event = "hit"
	EventScore    Event = "score"
)

// Events lists every known cue.
var Events = []Event{
	EventStart, EventMove, EventEat, EventPower, EventEatGhost,
	EventDeath, EventGameOver, EventWin, EventLevelUp, EventRotate,
	EventDrop, EventLock, EventClear, EventHit, EventScore,
}

// Sink receives sound cues. Notify must not block.
type Sink interface {
	Notify(e Event)
}

// Nop discards every cue.
type Nop struct{}

// Notify implements Sink.
func (Nop) Notify(Event) {}

// OrNop returns s, or a Nop sink when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

// Recorder keeps every cue it receives. Tests use it to assert on side effects.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Notify implements Sink.
func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded cues in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many times e was recorded.
func (r *Recorder) Count(e Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

// Last returns the most recent cue, or "" if none.
func (r *Recorder) Last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return ""
	}
	return r.events[len(r.events)-1]
}

// Reset forgets all recorded cues.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
