// Package db owns the SQLite database: opening connections, the
// authoritative schema and the seed fixtures.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the database at path, creating parent directories as needed,
// and enables referential-integrity enforcement. The foreign-keys pragma
// goes in the DSN so every pooled connection gets it, not just the first.
// Callers own the returned handle and must Close it.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite3", "file:"+path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return database, nil
}

// Initialise creates the schema. Idempotent: every statement in the
// schema is IF NOT EXISTS, so re-running is safe.
func Initialise(database *sql.DB) error {
	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to initialise schema: %w", err)
	}
	return nil
}

// Reset removes the database file so the next Open starts fresh.
// Missing files are not an error.
func Reset(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove database file: %w", err)
	}
	return nil
}
