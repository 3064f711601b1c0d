package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")

	s, err := NewSQLiteStore(SQLiteStoreOptions{Path: path})
	require.NoError(t, err)

	_, ok, err := s.Get("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("theme", "light"))
	require.NoError(t, s.Set("theme", "dark"))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(SQLiteStoreOptions{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}
