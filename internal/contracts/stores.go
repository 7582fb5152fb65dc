// Package contracts defines interfaces that decouple the application
// layer from storage implementations.
package contracts

import (
	"context"
	"database/sql"
	"time"

	"rawser/internal/models"
)

// HistoryStore persists discovered candidates and download outcomes.
type HistoryStore interface {
	GetDB() *sql.DB

	// Add operations.
	RecordCandidate(ctx context.Context, c *models.MediaCandidate) error
	RecordDownload(ctx context.Context, t *models.DownloadTask) error

	// Update operations.
	UpdateDownload(ctx context.Context, t *models.DownloadTask) error

	// 'Get' operations.
	ListDownloads(ctx context.Context, since time.Time) ([]*models.DownloadRecord, error)
	GetDownload(ctx context.Context, taskID string) (*models.DownloadRecord, bool, error)
}
