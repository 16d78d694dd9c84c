package vatstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" driver, pure Go, no cgo

	"github.com/kvouter/vom/internal/singleflight"
)

// SQLiteStore is a durable Store backed by a single SQLite table. It is
// the real persistence layer behind the external Vatstore collaborator:
// where MemStore exists for tests, SQLiteStore is what a host actually
// wires the VOM to.
//
// Concurrent cold Gets for the same key are coalesced through a
// singleflight.Group so a burst of evictions followed by a burst of
// re-fetches does not hammer the database with duplicate reads.
type SQLiteStore struct {
	db *sql.DB
	sf singleflight.Group[string, getResult]
}

type getResult struct {
	value string
	ok    bool
}

const schema = `
CREATE TABLE IF NOT EXISTS vom_store (
	key       TEXT PRIMARY KEY,
	value     TEXT NOT NULL,
	tombstone INTEGER NOT NULL DEFAULT 0
);`

// OpenSQLiteStore opens (and, if needed, initializes) a SQLite-backed
// Store at dsn. Use ":memory:" for an ephemeral store, or a file path for
// a durable one.
func OpenSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("vatstore: open %q: %w", dsn, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("vatstore: init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	res, err := s.sf.Do(context.Background(), key, func() (getResult, error) {
		var value string
		var tombstone int
		row := s.db.QueryRow(`SELECT value, tombstone FROM vom_store WHERE key = ?`, key)
		switch err := row.Scan(&value, &tombstone); err {
		case nil:
			return getResult{value: value, ok: tombstone == 0}, nil
		case sql.ErrNoRows:
			return getResult{}, nil
		default:
			return getResult{}, fmt.Errorf("vatstore: get %q: %w", key, err)
		}
	})
	if err != nil {
		return "", false, err
	}
	return res.value, res.ok, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO vom_store(key, value, tombstone) VALUES (?, ?, 0)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, tombstone = 0`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("vatstore: set %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(key string) error {
	_, err := s.db.Exec(
		`INSERT INTO vom_store(key, value, tombstone) VALUES (?, '', 1)
		 ON CONFLICT(key) DO UPDATE SET tombstone = 1`,
		key,
	)
	if err != nil {
		return fmt.Errorf("vatstore: delete %q: %w", key, err)
	}
	return nil
}

// compile-time check
var _ Store = (*SQLiteStore)(nil)
