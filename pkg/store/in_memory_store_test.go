package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore(t *testing.T) {
	s := NewInMemoryStore()

	_, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("theme", "light"))
	value, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)

	require.NoError(t, s.Set("theme", "dark"))
	value, _, _ = s.Get("theme")
	assert.Equal(t, "dark", value)

	assert.NoError(t, s.Close())
}

func TestInMemoryStore_Concurrent(t *testing.T) {
	s := NewInMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set("theme", "dark")
			_, _, _ = s.Get("theme")
		}()
	}
	wg.Wait()

	value, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}
