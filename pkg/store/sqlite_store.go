package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	errUtils "github.com/cloudposse/ticktock/errors"
	"github.com/cloudposse/ticktock/pkg/xdg"
)

const defaultSQLiteFile = "preferences.db"

// SQLiteStoreOptions configures the SQLite backend.
type SQLiteStoreOptions struct {
	// Path of the database. Defaults to $XDG_DATA_HOME/ticktock/preferences.db.
	Path string `mapstructure:"path"`
}

// SQLiteStore keeps preferences in a single-table SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (and migrates) the database.
func NewSQLiteStore(opts SQLiteStoreOptions) (*SQLiteStore, error) {
	path := opts.Path
	if path == "" {
		dir, err := xdg.GetXDGDataDir("", dirPerm)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUtils.ErrStoreOpen, err)
		}
		path = filepath.Join(dir, defaultSQLiteFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUtils.ErrCreateDirectory, filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUtils.ErrStoreOpen, err)
	}
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w %q: %w", errUtils.ErrStoreOpen, pragma, err)
		}
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	const schema = `CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("%w: migration failed: %w", errUtils.ErrStoreOpen, err)
	}
	return nil
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(context.Background(),
		`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", errUtils.ErrStoreRead, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", errUtils.ErrStoreWrite, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
