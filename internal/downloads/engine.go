// Package downloads executes media downloads with browser-faithful
// headers, dispatching per media kind between a direct streaming fetch
// and an external ffmpeg remux.
package downloads

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"rawser/internal/domain/consts"
	"rawser/internal/headers"
	"rawser/internal/models"
	"rawser/internal/utils/logging"

	"github.com/google/uuid"
)

// Options holds configuration for download operations.
type Options struct {
	OutputDir  string
	FFmpegPath string

	// RateLimitBps throttles direct streams when > 0 (bytes/second).
	RateLimitBps int64

	MaxRetries int
}

// DefaultOptions provides sensible defaults.
var DefaultOptions = Options{
	OutputDir:  "downloads",
	FFmpegPath: consts.FFmpegBin,
	MaxRetries: 3,
}

// Engine runs download tasks. Each task owns its destination file
// exclusively, so concurrent Download calls need no coordination.
type Engine struct {
	opts    Options
	cookies headers.CookieSource
	client  *http.Client

	onStart    func(task *models.DownloadTask)
	onProgress func(taskID string, progress float64)
	onComplete func(taskID, path string)

	// resolveHLS maps a master playlist URL onto its best media
	// playlist before remux. Optional.
	resolveHLS func(ctx context.Context, url string, hdrs map[string]string) (string, error)

	// sleep is swappable so retry backoff is testable.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewEngine returns a download engine. A nil opts uses DefaultOptions;
// cookies may be nil when no cookie store is attached.
func NewEngine(opts *Options, cookies headers.CookieSource) *Engine {
	e := &Engine{
		opts:    DefaultOptions,
		cookies: cookies,
		sleep:   sleepCtx,
	}
	if opts != nil {
		e.opts = *opts
	}
	if e.opts.FFmpegPath == "" {
		e.opts.FFmpegPath = consts.FFmpegBin
	}
	e.client = &http.Client{Timeout: consts.DownloadTimeout}
	return e
}

// OnStart registers the notification invoked once per task, before the
// first attempt runs. The task carries its final ID and destination.
func (e *Engine) OnStart(fn func(task *models.DownloadTask)) {
	e.onStart = fn
}

// OnProgress registers the per-chunk progress notification.
func (e *Engine) OnProgress(fn func(taskID string, progress float64)) {
	e.onProgress = fn
}

// OnComplete registers the completion notification.
func (e *Engine) OnComplete(fn func(taskID, path string)) {
	e.onComplete = fn
}

// SetHLSResolver installs the master-playlist resolver used before
// handing HLS sources to ffmpeg.
func (e *Engine) SetHLSResolver(fn func(ctx context.Context, url string, hdrs map[string]string) (string, error)) {
	e.resolveHLS = fn
}

// newTask assigns the task ID and final destination path. Manifests
// remux into an mp4 container whatever extension the name carried, so
// the path is forced up front and failure cleanup targets the file
// ffmpeg actually writes.
func (e *Engine) newTask(media *models.MediaCandidate, filename string) *models.DownloadTask {
	if filename == "" {
		filename = resolveFilename(media.URL, media.Kind)
	}

	dest := joinDest(e.opts.OutputDir, filename)
	if media.Kind == models.KindHLSManifest || media.Kind == models.KindDASHManifest {
		dest = forceMP4(dest)
	}

	return &models.DownloadTask{
		ID:              uuid.New().String()[:8],
		SourceURL:       media.URL,
		DestinationPath: dest,
		Status:          models.DLStatusRunning,
		HeadersUsed:     headers.Synthesize(media, e.cookies),
	}
}

// Download executes one download attempt for the candidate. Failures
// are captured on the returned task rather than raised; callers check
// Status and Error.
func (e *Engine) Download(ctx context.Context, media *models.MediaCandidate, filename string) *models.DownloadTask {
	task := e.newTask(media, filename)
	if e.onStart != nil {
		e.onStart(task)
	}

	e.attempt(ctx, task, media)
	return task
}

// attempt runs one download pass, setting the task's terminal state.
func (e *Engine) attempt(ctx context.Context, task *models.DownloadTask, media *models.MediaCandidate) {
	task.Status = models.DLStatusRunning
	task.Error = ""

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		task.Status = models.DLStatusFailed
		task.Error = fmt.Sprintf("failed to create output directory: %v", err)
		return
	}

	var err error
	switch media.Kind {
	case models.KindHLSManifest, models.KindDASHManifest:
		err = e.remuxDownload(ctx, task, media.Kind, task.HeadersUsed)
	default:
		// Direct streaming covers mp4, webm, audio and unknown falls
		// back here too.
		err = e.directDownload(ctx, task, task.HeadersUsed)
	}

	if err != nil {
		task.Status = models.DLStatusFailed
		task.Error = err.Error()
		e.cleanupPartial(ctx, task)
		return
	}

	task.Status = models.DLStatusCompleted
	if e.onComplete != nil {
		e.onComplete(task.ID, task.DestinationPath)
	}
}

// DownloadWithRetry runs up to maxRetries attempts with exponential
// backoff between them, all under one task ID. The caller gets either
// the first successful task or one aggregated failure.
func (e *Engine) DownloadWithRetry(ctx context.Context, media *models.MediaCandidate, filename string, maxRetries int) *models.DownloadTask {
	if maxRetries < 1 {
		maxRetries = e.opts.MaxRetries
	}

	task := e.newTask(media, filename)
	if e.onStart != nil {
		e.onStart(task)
	}

	var lastErr string
	for attempt := 0; attempt < maxRetries; attempt++ {
		logging.I("Starting download attempt %d/%d for URL: %s", attempt+1, maxRetries, media.URL)

		e.attempt(ctx, task, media)
		if task.Completed() {
			logging.S("Download complete: %s", task.DestinationPath)
			return task
		}

		lastErr = task.Error
		logging.E("Download attempt %d failed: %s", attempt+1, lastErr)

		if attempt < maxRetries-1 {
			backoff := consts.BackoffUnit * time.Duration(1<<attempt)
			if err := e.sleep(ctx, backoff); err != nil {
				lastErr = err.Error()
				break
			}
		}
	}

	task.Status = models.DLStatusFailed
	task.Error = fmt.Sprintf("failed after %d attempts: %s", maxRetries, lastErr)
	return task
}

// cleanupPartial removes a truncated destination file after a failed
// attempt. Cancelled downloads keep their partial output so callers
// can inspect it; they must never treat it as success.
func (e *Engine) cleanupPartial(ctx context.Context, task *models.DownloadTask) {
	if ctx.Err() != nil {
		return
	}
	if err := os.Remove(task.DestinationPath); err != nil && !os.IsNotExist(err) {
		logging.D(1, "Could not remove partial file %q: %v", task.DestinationPath, err)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
