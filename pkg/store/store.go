// Package store persists small user preferences (currently the light/dark
// theme) across runs. Backends are selected by the store.type setting.
package store

// Store is a flat string key/value store.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(key, value string) error
	// Close releases resources held by the backend.
	Close() error
}

// Backend type names accepted by New.
const (
	TypeMemory = "memory"
	TypeFile   = "file"
	TypeRedis  = "redis"
	TypeSQLite = "sqlite"
)
