// Package store persists all entity domains in a single SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// ErrNotFound is returned when a lookup by id matches nothing.
var ErrNotFound = errors.New("not found")

// Store wraps the SQLite handle. One Store serves every entity domain plus
// the preferences key-value table.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the data directory if needed and opens (or initializes) the
// database at dataDir/fieldops.db.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".fieldops")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "fieldops.db")

	// WAL mode so reads (search, index rebuilds) don't block writes.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

const schema = `
CREATE TABLE IF NOT EXISTS operations (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	region      TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT 'active',
	started_at  DATETIME,
	updated_at  DATETIME
);

CREATE TABLE IF NOT EXISTS tasks (
	id           TEXT PRIMARY KEY,
	operation_id TEXT NOT NULL DEFAULT '',
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	priority     TEXT NOT NULL DEFAULT 'medium',
	status       TEXT NOT NULL DEFAULT 'open',
	region       TEXT NOT NULL DEFAULT '',
	due_at       DATETIME,
	created_at   DATETIME,
	updated_at   DATETIME
);

CREATE TABLE IF NOT EXISTS events (
	id           TEXT PRIMARY KEY,
	operation_id TEXT NOT NULL DEFAULT '',
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	location     TEXT NOT NULL DEFAULT '',
	region       TEXT NOT NULL DEFAULT '',
	starts_at    DATETIME,
	ends_at      DATETIME,
	all_day      INTEGER NOT NULL DEFAULT 0,
	updated_at   DATETIME
);

CREATE TABLE IF NOT EXISTS wikis (
	id             TEXT PRIMARY KEY,
	operation_name TEXT NOT NULL DEFAULT '',
	title          TEXT NOT NULL,
	content        TEXT NOT NULL DEFAULT '',
	tags           TEXT NOT NULL DEFAULT '[]',
	updated_at     DATETIME
);

CREATE TABLE IF NOT EXISTS journals (
	id         TEXT PRIMARY KEY,
	day        DATETIME,
	title      TEXT NOT NULL DEFAULT '',
	body       TEXT NOT NULL DEFAULT '',
	created_at DATETIME,
	updated_at DATETIME
);

CREATE TABLE IF NOT EXISTS prefs (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`
