// Package database opens the Rawser SQLite database and initializes
// its tables.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath returns the standard database location under the user's
// home directory (~/.rawser/rawser.db).
func DefaultPath() (string, error) {
	const (
		rDir  = ".rawser"
		rFile = "rawser.db"
	)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, rDir, rFile), nil
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to make database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path %q: %w", path, err)
	}

	if err := initTables(db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to initialize tables: %w (close error: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}
	return db, nil
}

// initTables initializes the SQL tables.
func initTables(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := initCandidatesTable(tx); err != nil {
		return err
	}
	if err := initDownloadsTable(tx); err != nil {
		return err
	}
	return tx.Commit()
}
