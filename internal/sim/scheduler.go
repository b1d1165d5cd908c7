package sim

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type event struct {
	key     string
	due     time.Duration
	seq     uint64
	session uuid.UUID
	fn      func()
}

// Scheduler runs one-shot callbacks on a virtual timeline advanced by the
// game. Every event is stamped with the session that scheduled it; events
// from an older session are dropped when they come due.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	session uuid.UUID
	events  []*event
	logger  *log.Logger
}

// NewScheduler creates a scheduler with a fresh session.
func NewScheduler(logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		session: uuid.New(),
		logger:  logger,
	}
}

// NewSession starts a new session. Everything still pending belongs to the
// previous session and will never run.
func (s *Scheduler) NewSession() uuid.UUID {
	s.session = uuid.New()
	return s.session
}

// Session returns the current session token.
func (s *Scheduler) Session() uuid.UUID {
	return s.session
}

// Now returns the scheduler's virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d has elapsed. A non-empty key replaces any
// pending event with the same key instead of adding a second one.
func (s *Scheduler) After(d time.Duration, key string, fn func()) {
	if key != "" {
		s.Cancel(key)
	}
	s.seq++
	s.events = append(s.events, &event{
		key:     key,
		due:     s.now + max(d, 0),
		seq:     s.seq,
		session: s.session,
		fn:      fn,
	})
}

// Cancel removes the pending event with the given key.
func (s *Scheduler) Cancel(key string) bool {
	i := slices.IndexFunc(s.events, func(e *event) bool { return e.key == key })
	if i < 0 {
		return false
	}
	s.events = slices.Delete(s.events, i, i+1)
	return true
}

// CancelAll drops every pending event.
func (s *Scheduler) CancelAll() {
	s.events = nil
}

// Pending returns the number of queued events, stale ones included.
func (s *Scheduler) Pending() int {
	return len(s.events)
}

// Remaining returns the time left on the current session's event with key.
func (s *Scheduler) Remaining(key string) (time.Duration, bool) {
	for _, e := range s.events {
		if e.key == key && e.session == s.session {
			return e.due - s.now, true
		}
	}
	return 0, false
}

// Advance moves virtual time forward and runs every event that came due, in
// due order. Callbacks may schedule further events; those run within the
// same call if they are already due. It returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	fired := 0
	for {
		e := s.popDue()
		if e == nil {
			return fired
		}
		if e.session != s.session {
			s.logger.Debug("dropping stale event", "key", e.key, "session", e.session, "current", s.session)
			continue
		}
		e.fn()
		fired++
	}
}

func (s *Scheduler) popDue() *event {
	idx := -1
	for i, e := range s.events {
		if e.due > s.now {
			continue
		}
		if idx < 0 || e.due < s.events[idx].due || (e.due == s.events[idx].due && e.seq < s.events[idx].seq) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	e := s.events[idx]
	s.events = slices.Delete(s.events, idx, idx+1)
	return e
}

// Reset clears all events, rewinds virtual time and starts a new session.
func (s *Scheduler) Reset() uuid.UUID {
	s.events = nil
	s.now = 0
	return s.NewSession()
}
