package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drainAll(r *Repeater) []int {
	var got []int
	r.Drain(func(id int) { got = append(got, id) })
	return got
}

func TestRepeaterFiresWhileHeld(t *testing.T) {
	r := NewRepeater(10, 1.6, 64)
	defer r.Close()

	r.Press(2)
	require.Eventually(t, func() bool {
		return len(r.fired) >= 3
	}, time.Second, 2*time.Millisecond)

	got := drainAll(r)
	require.GreaterOrEqual(t, len(got), 3)
	for _, id := range got {
		assert.Equal(t, 2, id)
	}
}

func TestRepeaterReleaseDiscardsPending(t *testing.T) {
	r := NewRepeater(5, 1, 64)
	defer r.Close()

	r.Press(0)
	require.Eventually(t, func() bool {
		return len(r.fired) >= 1
	}, time.Second, time.Millisecond)

	r.Release(0)
	r.Release(0)
	assert.False(t, r.Held(0))
	assert.Empty(t, drainAll(r), "fires queued before release belong to a dead press")

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, drainAll(r), "no fires after release")
}

func TestRepeaterRepressStartsNewGeneration(t *testing.T) {
	r := NewRepeater(5, 1, 64)
	defer r.Close()

	r.Press(1)
	require.Eventually(t, func() bool {
		return len(r.fired) >= 1
	}, time.Second, time.Millisecond)
	r.Release(1)

	// A stale fire from the first press is still queued when the key goes down again
	r.SetSlowFactor(0.01)
	r.Press(1)
	stale := drainAll(r)
	assert.Empty(t, stale)
	assert.True(t, r.Held(1))
}

func TestRepeaterPressWhileHeldIsNoop(t *testing.T) {
	r := NewRepeater(1000, 1, 4)
	defer r.Close()

	r.Press(3)
	r.mu.Lock()
	first := r.tasks[3]
	r.mu.Unlock()

	r.Press(3)
	r.mu.Lock()
	assert.Same(t, first, r.tasks[3])
	r.mu.Unlock()
}

func TestRepeaterSlowFactor(t *testing.T) {
	r := NewRepeater(160, 1.6, 4)
	defer r.Close()

	assert.Equal(t, 160*time.Millisecond, r.period())
	r.SetSlowFactor(0.5)
	assert.Equal(t, 320*time.Millisecond, r.period())
	r.SetSlowFactor(0)
	assert.Equal(t, 1.0, r.SlowFactor())
}

func TestRepeaterClose(t *testing.T) {
	r := NewRepeater(5, 1, 4)
	r.Press(0)
	r.Close()
	r.Press(1)
	assert.False(t, r.Held(0))
	assert.False(t, r.Held(1))
}

func TestRepeaterFullQueueDrops(t *testing.T) {
	r := NewRepeater(2, 1, 1)
	defer r.Close()

	r.Press(4)
	require.Eventually(t, func() bool {
		return r.Dropped() > 0
	}, time.Second, time.Millisecond)
	assert.Len(t, drainAll(r), 1)
}
