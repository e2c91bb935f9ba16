// Package storage is the gateway to the on-disk key-value document store.
// Each logical document (record list, budget, currency settings) lives under
// a fixed key as an encoded string. Reads mask failures with defaults and
// writes swallow failures after logging; the rest of the application never
// sees a storage error.
package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Document keys. The values are stable; changing one orphans the data
// written under the old key.
const (
	recordsKey  = "records"
	budgetKey   = "budget"
	currencyKey = "currency"
)

// Store is a SQLite-backed key-value document store.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the document store at the given path. Opening is
// the one storage operation that reports failure; everything after lives
// behind the mask-with-defaults policy.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path must not be empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// getDocument fetches a document value. A missing row and a query failure
// both come back as "not present"; the failure is logged first.
func (s *Store) getDocument(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		return "", false
	case err != nil:
		slog.Error("failed to read document", "key", key, "error", err)
		return "", false
	}
	return value, true
}

// putDocument stores a document value, logging and dropping any failure.
func (s *Store) putDocument(key, value string) {
	_, err := s.db.Exec(`
		INSERT INTO documents (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		slog.Error("failed to write document", "key", key, "error", err)
	}
}
