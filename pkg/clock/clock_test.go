package clock

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	at := time.Date(2026, time.October, 15, 15, 30, 12, 345_678_901, time.UTC)

	s := Sample(at)
	assert.Equal(t, 15, s.Hour24)
	assert.Equal(t, 30, s.Minute)
	assert.Equal(t, 12, s.Second)
	assert.Equal(t, 345, s.Millisecond)
	assert.True(t, at.Equal(s.Time))
}

func TestSample_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	at := time.Date(2026, time.October, 15, 23, 0, 0, 0, time.UTC).In(loc)

	assert.Equal(t, 1, Sample(at).Hour24)
}

func TestManualClock(t *testing.T) {
	start := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), c.Now())

	later := start.Add(time.Hour)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestManualClock_Concurrent(t *testing.T) {
	c := NewManualClock(time.Time{})

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Advance(time.Millisecond)
			_ = c.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100*time.Millisecond, c.Now().Sub(time.Time{}))
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	now := RealClock{}.Now()
	assert.False(t, now.Before(before))
}
