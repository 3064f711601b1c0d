package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVirtualScheduler_AdvanceFiresDueCallbacks(t *testing.T) {
	s := NewVirtualScheduler()
	count := 0
	h := s.Register(func() { count++ }, 10*time.Millisecond)

	require.NotZero(t, h)

	s.Advance(9 * time.Millisecond)
	assert.Equal(t, 0, count)

	s.Advance(1 * time.Millisecond)
	assert.Equal(t, 1, count)

	s.Advance(45 * time.Millisecond)
	assert.Equal(t, 5, count)
	assert.Equal(t, 55*time.Millisecond, s.Now())
}

func TestVirtualScheduler_DeadlineOrderWithRegistrationTies(t *testing.T) {
	s := NewVirtualScheduler()
	var order []string
	s.Register(func() { order = append(order, "slow") }, 30*time.Millisecond)
	s.Register(func() { order = append(order, "fast-a") }, 10*time.Millisecond)
	s.Register(func() { order = append(order, "fast-b") }, 10*time.Millisecond)

	s.Advance(30 * time.Millisecond)

	assert.Equal(t, []string{
		"fast-a", "fast-b",
		"fast-a", "fast-b",
		"slow", "fast-a", "fast-b",
	}, order)
}

func TestVirtualScheduler_CancelStopsFutureTicks(t *testing.T) {
	s := NewVirtualScheduler()
	count := 0
	h := s.Register(func() { count++ }, time.Second)

	s.Advance(2 * time.Second)
	s.Cancel(h)
	s.Advance(5 * time.Second)

	assert.Equal(t, 2, count)
	assert.Empty(t, s.Active())
}

func TestVirtualScheduler_CancelFromCallback(t *testing.T) {
	s := NewVirtualScheduler()
	count := 0
	var h Handle
	h = s.Register(func() {
		count++
		if count == 3 {
			s.Cancel(h)
		}
	}, time.Millisecond)

	s.Advance(10 * time.Millisecond)

	assert.Equal(t, 3, count)
}

func TestVirtualScheduler_RegisterFromCallback(t *testing.T) {
	s := NewVirtualScheduler()
	inner := 0
	registered := false
	s.Register(func() {
		if !registered {
			registered = true
			s.Register(func() { inner++ }, 10*time.Millisecond)
		}
	}, 10*time.Millisecond)

	s.Advance(30 * time.Millisecond)

	// Registered at t=10ms, so it fires at 20ms and 30ms.
	assert.Equal(t, 2, inner)
}

func TestVirtualScheduler_DeliverIgnoresCancellation(t *testing.T) {
	s := NewVirtualScheduler()
	count := 0
	h := s.Register(func() { count++ }, time.Second)
	s.Cancel(h)

	s.Deliver(h)
	assert.Equal(t, 1, count)

	s.Deliver(Handle(999))
	s.Deliver(0)
	assert.Equal(t, 1, count)
}

func TestVirtualScheduler_CancelUnknownIsNoop(t *testing.T) {
	s := NewVirtualScheduler()
	h := s.Register(func() {}, time.Second)

	assert.NotPanics(t, func() {
		s.Cancel(0)
		s.Cancel(Handle(42))
		s.Cancel(h)
		s.Cancel(h)
	})
}

func TestVirtualScheduler_ActiveAndLast(t *testing.T) {
	s := NewVirtualScheduler()
	assert.Zero(t, s.Last())

	a := s.Register(func() {}, time.Second)
	b := s.Register(func() {}, time.Second)
	c := s.Register(func() {}, time.Second)
	s.Cancel(b)

	assert.Equal(t, []Handle{a, c}, s.Active())
	assert.Equal(t, c, s.Last())
}

func TestVirtualScheduler_NonPositivePeriodPanics(t *testing.T) {
	s := NewVirtualScheduler()
	assert.Panics(t, func() { s.Register(func() {}, 0) })
	assert.Panics(t, func() { s.Register(func() {}, -time.Second) })
}
