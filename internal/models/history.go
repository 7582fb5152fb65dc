package models

import "time"

// DownloadRecord is one persisted download-history row.
type DownloadRecord struct {
	TaskID    string    `json:"task_id"`
	URL       string    `json:"url"`
	Path      string    `json:"path"`
	Status    DLStatus  `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
