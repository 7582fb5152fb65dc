// Package repo implements the storage contracts over SQLite.
package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
	"rawser/internal/utils/logging"

	"github.com/Masterminds/squirrel"
)

// HistoryStore persists candidate discoveries and download outcomes.
type HistoryStore struct {
	DB *sql.DB
}

// GetHistoryStore returns a history store instance with injected database.
func GetHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{
		DB: db,
	}
}

// GetDB returns the database.
func (hs *HistoryStore) GetDB() *sql.DB {
	return hs.DB
}

// RecordCandidate inserts a discovered candidate, ignoring duplicates
// so re-offered URLs stay idempotent at the persistence layer too.
func (hs *HistoryStore) RecordCandidate(ctx context.Context, c *models.MediaCandidate) error {
	query := squirrel.Insert(consts.DBCandidates).
		Columns(consts.QCandURL, consts.QCandKind, consts.QCandReferrer, consts.QCandContentType, consts.QCandObservedAt).
		Values(c.URL, string(c.Kind), c.Referrer, c.ContentType, c.ObservedAt).
		Suffix("ON CONFLICT(url) DO NOTHING").
		RunWith(hs.DB)

	if _, err := query.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to record candidate %q: %w", c.URL, err)
	}

	logging.D(2, "Recorded candidate %q (%s)", c.URL, c.Kind)
	return nil
}

// RecordDownload inserts a download task row.
func (hs *HistoryStore) RecordDownload(ctx context.Context, t *models.DownloadTask) error {
	now := time.Now()

	query := squirrel.Insert(consts.DBDownloads).
		Columns(consts.QDLTaskID, consts.QDLURL, consts.QDLPath, consts.QDLStatus, consts.QDLError, consts.QDLCreatedAt, consts.QDLUpdatedAt).
		Values(t.ID, t.SourceURL, t.DestinationPath, string(t.Status), t.Error, now, now).
		RunWith(hs.DB)

	if _, err := query.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to record download %q: %w", t.ID, err)
	}
	return nil
}

// UpdateDownload updates the status fields of a download task row.
func (hs *HistoryStore) UpdateDownload(ctx context.Context, t *models.DownloadTask) error {
	query := squirrel.Update(consts.DBDownloads).
		Set(consts.QDLPath, t.DestinationPath).
		Set(consts.QDLStatus, string(t.Status)).
		Set(consts.QDLError, t.Error).
		Set(consts.QDLUpdatedAt, time.Now()).
		Where(squirrel.Eq{consts.QDLTaskID: t.ID}).
		RunWith(hs.DB)

	if _, err := query.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to update download %q: %w", t.ID, err)
	}
	return nil
}

// ListDownloads returns download records created at or after since, in
// reverse chronological order. A zero since returns everything.
func (hs *HistoryStore) ListDownloads(ctx context.Context, since time.Time) ([]*models.DownloadRecord, error) {
	builder := squirrel.Select(consts.QDLTaskID, consts.QDLURL, consts.QDLPath, consts.QDLStatus, consts.QDLError, consts.QDLCreatedAt, consts.QDLUpdatedAt).
		From(consts.DBDownloads).
		OrderBy(consts.QDLCreatedAt + " DESC")

	if !since.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{consts.QDLCreatedAt: since})
	}

	rows, err := builder.RunWith(hs.DB).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logging.E("Failed to close download rows: %v", err)
		}
	}()

	var records []*models.DownloadRecord
	for rows.Next() {
		var (
			rec    models.DownloadRecord
			status string
		)
		if err := rows.Scan(&rec.TaskID, &rec.URL, &rec.Path, &status, &rec.Error, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan download row: %w", err)
		}
		rec.Status = models.DLStatus(status)
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// GetDownload returns one download record by task ID.
func (hs *HistoryStore) GetDownload(ctx context.Context, taskID string) (*models.DownloadRecord, bool, error) {
	row := squirrel.Select(consts.QDLTaskID, consts.QDLURL, consts.QDLPath, consts.QDLStatus, consts.QDLError, consts.QDLCreatedAt, consts.QDLUpdatedAt).
		From(consts.DBDownloads).
		Where(squirrel.Eq{consts.QDLTaskID: taskID}).
		RunWith(hs.DB).
		QueryRowContext(ctx)

	var (
		rec    models.DownloadRecord
		status string
	)
	if err := row.Scan(&rec.TaskID, &rec.URL, &rec.Path, &status, &rec.Error, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get download %q: %w", taskID, err)
	}
	rec.Status = models.DLStatus(status)
	return &rec, true, nil
}
