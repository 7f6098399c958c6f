// Package sqlite implements the persistence ports over a local SQLite file.
//
// Durable state is a single key/value table: each entity collection is stored
// as one JSON blob under a fixed key and saved as a full overwrite. This keeps
// the storage layer a dumb snapshot store that business logic cannot bypass.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

const (
	accountsKey     = "accounts"
	transactionsKey = "transactions"
)

// Store wraps the sqlite handle holding the snapshot table.
type Store struct {
	db *sql.DB
}

// Open opens (creating when absent) the sqlite database at path and ensures
// the snapshot schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %q: %w", path, err)
	}
	// Snapshot writes are whole-blob and serialized by the stores; a single
	// connection avoids SQLITE_BUSY on concurrent handler goroutines.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		data       BLOB NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// getBlob returns the raw blob stored under key, or nil when absent.
func (s *Store) getBlob(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", key, err)
	}
	return data, nil
}

// putBlob overwrites the blob stored under key.
func (s *Store) putBlob(ctx context.Context, key string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data)
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", key, err)
	}
	return nil
}
