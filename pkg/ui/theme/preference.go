package theme

import (
	"fmt"
	"sync"

	log "github.com/charmbracelet/log"

	errUtils "github.com/cloudposse/ticktock/errors"
)

// PreferenceKey is the store key holding the persisted mode.
const PreferenceKey = "theme"

// KeyValueStore is the subset of a preference store the theme needs.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Preference tracks the current mode and persists every change.
type Preference struct {
	mu    sync.Mutex
	store KeyValueStore
	mode  Mode
}

// NewPreference returns a preference backed by store, starting at DefaultMode.
// Call Load to read the persisted value.
func NewPreference(store KeyValueStore) *Preference {
	return &Preference{store: store, mode: DefaultMode}
}

// Load reads the persisted mode. A missing or unparsable value falls back to DefaultMode.
func (p *Preference) Load() (Mode, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	value, ok, err := p.store.Get(PreferenceKey)
	if err != nil {
		return p.mode, fmt.Errorf("%w: %w", errUtils.ErrThemePreference, err)
	}
	if !ok {
		p.mode = DefaultMode
		return p.mode, nil
	}

	mode, err := ParseMode(value)
	if err != nil {
		log.Debug("Ignoring persisted theme", "value", value, "error", err)
		p.mode = DefaultMode
		return p.mode, nil
	}
	p.mode = mode
	return p.mode, nil
}

// Mode returns the current mode.
func (p *Preference) Mode() Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Set persists mode and makes it current.
// The in-memory mode only changes if the write succeeds.
func (p *Preference) Set(mode Mode) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.store.Set(PreferenceKey, mode.String()); err != nil {
		return fmt.Errorf("%w: %w", errUtils.ErrThemePersist, err)
	}
	p.mode = mode
	return nil
}

// Toggle flips between light and dark and persists the result.
func (p *Preference) Toggle() (Mode, error) {
	next := p.Mode().Toggle()
	if err := p.Set(next); err != nil {
		return p.Mode(), err
	}
	return next, nil
}
