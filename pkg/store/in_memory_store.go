package store

import "sync"

// InMemoryStore keeps values for the lifetime of the process.
type InMemoryStore struct {
	data map[string]string
	mu   sync.RWMutex
}

var _ Store = (*InMemoryStore)(nil)

// NewInMemoryStore initializes an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string]string)}
}

func (m *InMemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *InMemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *InMemoryStore) Close() error {
	return nil
}
