package audio

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestBell_PlaysQueuedTonesInOrder(t *testing.T) {
	out := &syncBuffer{}
	b := NewBell(out)

	var mu sync.Mutex
	var pauses []time.Duration
	b.sleep = func(d time.Duration) {
		mu.Lock()
		pauses = append(pauses, d)
		mu.Unlock()
	}

	b.PlayTone(523.25, 200*time.Millisecond)
	b.PlayTone(659.25, 100*time.Millisecond)
	b.PlayTone(783.99, 50*time.Millisecond)

	require.Eventually(t, func() bool { return out.String() == "\a\a\a" }, time.Second, time.Millisecond)
	require.NoError(t, b.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []time.Duration{200 * time.Millisecond, 100 * time.Millisecond, 50 * time.Millisecond}, pauses)
}

func TestBell_ClosePlaysQueuedChime(t *testing.T) {
	out := &syncBuffer{}
	b := NewBell(out)
	b.sleep = func(time.Duration) {}

	b.PlayTone(523.25, 200*time.Millisecond)
	b.PlayTone(659.25, 200*time.Millisecond)
	b.PlayTone(783.99, 200*time.Millisecond)
	require.NoError(t, b.Close())

	assert.Equal(t, "\a\a\a", out.String())
}

func TestBell_DropsAfterClose(t *testing.T) {
	out := &syncBuffer{}
	b := NewBell(out)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	b.PlayTone(1000, time.Millisecond)

	assert.Empty(t, out.String())
}

func TestPlayer(t *testing.T) {
	assert.Nil(t, Player(false, &syncBuffer{}))

	b := Player(true, &syncBuffer{})
	require.NotNil(t, b)
	assert.NoError(t, b.Close())
}

func TestBell_NilIsSilent(t *testing.T) {
	var b *Bell
	assert.NotPanics(t, func() {
		b.PlayTone(1000, time.Millisecond)
		_ = b.Close()
	})
}
