package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerScheduler_FiresUntilCancelled(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Close()

	var count atomic.Int64
	h := s.Register(func() { count.Add(1) }, time.Millisecond)
	require.NotZero(t, h)

	require.Eventually(t, func() bool { return count.Load() >= 3 }, 2*time.Second, time.Millisecond)

	s.Cancel(h)
	assert.Zero(t, s.Len())

	// A callback dispatched before Cancel may still finish.
	time.Sleep(10 * time.Millisecond)
	settled := count.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, count.Load())
}

func TestTickerScheduler_CancelDoesNotWaitForCallback(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Close()

	entered := make(chan struct{})
	release := make(chan struct{})
	var once atomic.Bool
	h := s.Register(func() {
		if once.CompareAndSwap(false, true) {
			close(entered)
		}
		<-release
	}, time.Millisecond)

	<-entered
	done := make(chan struct{})
	go func() {
		s.Cancel(h)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Cancel blocked on an in-flight callback")
	}
	close(release)
}

func TestTickerScheduler_CloseCancelsAll(t *testing.T) {
	s := NewTickerScheduler()
	s.Register(func() {}, time.Millisecond)
	s.Register(func() {}, time.Millisecond)
	require.Equal(t, 2, s.Len())

	s.Close()

	assert.Zero(t, s.Len())
}

func TestTickerScheduler_HandlesAreUnique(t *testing.T) {
	s := NewTickerScheduler()
	defer s.Close()

	a := s.Register(func() {}, time.Hour)
	b := s.Register(func() {}, time.Hour)

	assert.NotEqual(t, a, b)
	assert.NotPanics(t, func() {
		s.Cancel(0)
		s.Cancel(a)
		s.Cancel(a)
	})
}

func TestTickerScheduler_NonPositivePeriodPanics(t *testing.T) {
	s := NewTickerScheduler()
	assert.Panics(t, func() { s.Register(func() {}, 0) })
}
