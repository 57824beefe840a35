package store

import (
	"database/sql"
	"fmt"
)

// Prefs is a flat key-value view over the prefs table, used for small bits
// of durable UI state like the recent-search list.
type Prefs struct {
	store *Store
}

func (s *Store) Prefs() *Prefs {
	return &Prefs{store: s}
}

// Get returns the value for key, or "" when the key is absent.
func (p *Prefs) Get(key string) (string, error) {
	var value string
	err := p.store.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading pref %q: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous value.
func (p *Prefs) Put(key, value string) error {
	_, err := p.store.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing pref %q: %w", key, err)
	}
	return nil
}
