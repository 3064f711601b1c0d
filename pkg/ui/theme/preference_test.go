package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/ticktock/errors"
)

type mapStore struct {
	data     map[string]string
	getErr   error
	setErr   error
	setCalls int
}

func newMapStore() *mapStore {
	return &mapStore{data: map[string]string{}}
}

func (m *mapStore) Get(key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mapStore) Set(key, value string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func TestPreference_LoadDefaultsToDark(t *testing.T) {
	p := NewPreference(newMapStore())

	mode, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)
}

func TestPreference_LoadPersisted(t *testing.T) {
	store := newMapStore()
	store.data[PreferenceKey] = "light"

	p := NewPreference(store)
	mode, err := p.Load()
	require.NoError(t, err)
	assert.Equal(t, Light, mode)
	assert.Equal(t, Light, p.Mode())
}

func TestPreference_LoadIgnoresGarbage(t *testing.T) {
	store := newMapStore()
	store.data[PreferenceKey] = "purple"

	mode, err := NewPreference(store).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultMode, mode)
}

func TestPreference_LoadError(t *testing.T) {
	store := newMapStore()
	store.getErr = errors.New("disk on fire")

	_, err := NewPreference(store).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrThemePreference)
}

func TestPreference_TogglePersists(t *testing.T) {
	store := newMapStore()
	p := NewPreference(store)

	mode, err := p.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Light, mode)
	assert.Equal(t, "light", store.data[PreferenceKey])

	mode, err = p.Toggle()
	require.NoError(t, err)
	assert.Equal(t, Dark, mode)
	assert.Equal(t, "dark", store.data[PreferenceKey])
	assert.Equal(t, 2, store.setCalls)
}

func TestPreference_FailedWriteKeepsMode(t *testing.T) {
	store := newMapStore()
	store.setErr = errors.New("read-only")
	p := NewPreference(store)

	mode, err := p.Toggle()
	require.Error(t, err)
	assert.ErrorIs(t, err, errUtils.ErrThemePersist)
	assert.Equal(t, Dark, mode)
	assert.Equal(t, Dark, p.Mode())
}
