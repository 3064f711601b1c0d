package store

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
	"go.yaml.in/yaml/v3"

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/xdg"
)

const (
	defaultPreferencesFile = "preferences.yaml"

	filePerm = 0o644
	dirPerm  = 0o755

	lockRetries  = 50
	lockInterval = 10 * time.Millisecond
)

// FileStoreOptions configures the YAML file backend.
type FileStoreOptions struct {
	// Path of the preferences file. Defaults to $XDG_DATA_HOME/ticktock/preferences.yaml.
	Path string `mapstructure:"path"`
}

// FileStore keeps values in a YAML document on disk.
// Writes are serialized across processes with a sibling lock file and replace
// the document atomically.
type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates the backing directory and returns the store.
func NewFileStore(opts FileStoreOptions) (*FileStore, error) {
	path := opts.Path
	if path == "" {
		dir, err := xdg.GetXDGDataDir("", dirPerm)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUtils.ErrStoreOpen, err)
		}
		path = filepath.Join(dir, defaultPreferencesFile)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrCreateDirectory, filepath.Dir(path), err)
	}

	return &FileStore{path: path}, nil
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (string, bool, error) {
	var (
		data map[string]string
		err  error
	)
	lockErr := s.withLock(func(lock *flock.Flock) (bool, error) { return lock.TryRLock() }, func() error {
		data, err = s.read()
		return err
	})
	if lockErr != nil {
		return "", false, lockErr
	}

	value, ok := data[key]
	return value, ok, nil
}

func (s *FileStore) Set(key, value string) error {
	return s.withLock(func(lock *flock.Flock) (bool, error) { return lock.TryLock() }, func() error {
		data, err := s.read()
		if err != nil {
			return err
		}
		data[key] = value

		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("%w: %w", errUtils.ErrStoreWrite, err)
		}

		if err := renameio.WriteFile(s.path, buf.Bytes(), filePerm); err != nil {
			return fmt.Errorf("%w: %s: %w", errUtils.ErrStoreWrite, s.path, err)
		}
		return nil
	})
}

func (s *FileStore) Close() error {
	return nil
}

// read loads the document. A missing file is an empty store.
func (s *FileStore) read() (map[string]string, error) {
	data := map[string]string{}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrStoreRead, s.path, err)
	}

	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrStoreRead, s.path, err)
	}
	if data == nil {
		data = map[string]string{}
	}
	return data, nil
}

// withLock runs fn while holding a lock on a dedicated lock file, so the lock
// survives the atomic rename of the document.
func (s *FileStore) withLock(acquire func(*flock.Flock) (bool, error), fn func() error) error {
	lockPath := s.path + ".lock"
	lock := flock.New(lockPath)

	var locked bool
	for i := 0; i < lockRetries; i++ {
		var err error
		locked, err = acquire(lock)
		if err != nil {
			return fmt.Errorf("%w: %w", errUtils.ErrStoreLock, err)
		}
		if locked {
			break
		}
		time.Sleep(lockInterval)
	}
	if !locked {
		return fmt.Errorf("%w: %s is locked by another process", errUtils.ErrStoreLock, s.path)
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			log.Debug("Failed to unlock preferences file", "error", err, "path", lockPath)
		}
	}()
	return fn()
}
