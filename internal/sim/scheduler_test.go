package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerFiresWhenDue(t *testing.T) {
	s := NewScheduler(nil)
	fired := false
	s.After(100*time.Millisecond, "", func() { fired = true })

	assert.Equal(t, 0, s.Advance(99*time.Millisecond))
	assert.False(t, fired)

	assert.Equal(t, 1, s.Advance(time.Millisecond))
	assert.True(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerFiresInDueOrder(t *testing.T) {
	s := NewScheduler(nil)
	var order []string
	s.After(30*time.Millisecond, "c", func() { order = append(order, "c") })
	s.After(10*time.Millisecond, "a", func() { order = append(order, "a") })
	s.After(20*time.Millisecond, "b", func() { order = append(order, "b") })

	assert.Equal(t, 3, s.Advance(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestSchedulerKeyedEventIsReplaced(t *testing.T) {
	s := NewScheduler(nil)
	calls := 0
	s.After(100*time.Millisecond, "power", func() { calls++ })
	s.Advance(50 * time.Millisecond)

	s.After(100*time.Millisecond, "power", func() { calls++ })
	require.Equal(t, 1, s.Pending())

	left, ok := s.Remaining("power")
	require.True(t, ok)
	assert.Equal(t, 100*time.Millisecond, left)

	s.Advance(60 * time.Millisecond)
	assert.Equal(t, 0, calls, "first timer must not fire after being replaced")

	s.Advance(40 * time.Millisecond)
	assert.Equal(t, 1, calls)
}

func TestSchedulerSuppressesStaleSession(t *testing.T) {
	s := NewScheduler(nil)
	old := s.Session()
	fired := false
	s.After(10*time.Millisecond, "death", func() { fired = true })

	cur := s.NewSession()
	assert.NotEqual(t, old, cur)

	_, ok := s.Remaining("death")
	assert.False(t, ok, "stale events are not visible to the new session")

	assert.Equal(t, 0, s.Advance(time.Second))
	assert.False(t, fired)
	assert.Equal(t, 0, s.Pending())
}

func TestSchedulerCallbackMaySchedule(t *testing.T) {
	s := NewScheduler(nil)
	var order []int
	s.After(10*time.Millisecond, "", func() {
		order = append(order, 1)
		s.After(0, "", func() { order = append(order, 2) })
	})

	assert.Equal(t, 2, s.Advance(10*time.Millisecond))
	assert.Equal(t, []int{1, 2}, order)
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	s.After(10*time.Millisecond, "a", func() { fired++ })
	s.After(10*time.Millisecond, "b", func() { fired++ })

	assert.True(t, s.Cancel("a"))
	assert.False(t, s.Cancel("a"))
	s.Advance(time.Second)
	assert.Equal(t, 1, fired)

	s.After(10*time.Millisecond, "c", func() { fired++ })
	s.CancelAll()
	s.Advance(time.Second)
	assert.Equal(t, 1, fired)
}

func TestSchedulerReset(t *testing.T) {
	s := NewScheduler(nil)
	s.After(10*time.Millisecond, "x", func() {})
	s.Advance(5 * time.Millisecond)
	old := s.Session()

	s.Reset()
	assert.Equal(t, time.Duration(0), s.Now())
	assert.Equal(t, 0, s.Pending())
	assert.NotEqual(t, old, s.Session())
}
