// Package profile persists named column-settings profiles in a local
// SQLite database. The store is a string-keyed get/set/delete surface:
// payloads are opaque to it, single-user, synchronous.
package profile

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is an open profile database.
type Store struct {
	db *sql.DB
}

// Entry is one row of List. UpdatedAt is SQLite's datetime text,
// e.g. "2026-08-31 10:15:00".
type Entry struct {
	Name      string
	UpdatedAt string
}

// Open opens (creating if needed) the profile database at path and
// applies pending migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the payload stored under name. The second return is false
// when the name is unknown.
func (s *Store) Get(name string) (string, bool, error) {
	var payload string
	err := s.db.QueryRow(`SELECT settings FROM profiles WHERE name = ?`, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading profile %q: %w", name, err)
	}
	return payload, true, nil
}

// Set stores payload under name, replacing any existing payload.
func (s *Store) Set(name, payload string) error {
	_, err := s.db.Exec(`
		INSERT INTO profiles (name, settings) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET settings = excluded.settings, updated_at = datetime('now')
	`, name, payload)
	if err != nil {
		return fmt.Errorf("saving profile %q: %w", name, err)
	}
	return nil
}

// Delete removes the profile stored under name. Deleting an unknown
// name is an error.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting profile %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting profile %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("profile %q not found", name)
	}
	return nil
}

// List returns all profiles ordered by name.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT name, updated_at FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return entries, nil
}
