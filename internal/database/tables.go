package database

import (
	"database/sql"
	"fmt"
)

// initCandidatesTable initializes the candidates table.
func initCandidatesTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS candidates (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        url TEXT NOT NULL UNIQUE,
        kind TEXT NOT NULL,
        referrer TEXT,
        content_type TEXT,
        observed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_candidates_url ON candidates(url);
    CREATE INDEX IF NOT EXISTS idx_candidates_kind ON candidates(kind);
    `
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create candidates table: %w", err)
	}
	return nil
}

// initDownloadsTable initializes the downloads table.
func initDownloadsTable(tx *sql.Tx) error {
	query := `
    CREATE TABLE IF NOT EXISTS downloads (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        task_id TEXT NOT NULL UNIQUE,
        url TEXT NOT NULL,
        path TEXT,
        status TEXT NOT NULL,
        error TEXT,
        created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
        updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
    );
    CREATE INDEX IF NOT EXISTS idx_downloads_task_id ON downloads(task_id);
    CREATE INDEX IF NOT EXISTS idx_downloads_created_at ON downloads(created_at);
    `
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create downloads table: %w", err)
	}
	return nil
}
