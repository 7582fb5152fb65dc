package downloads

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
	"rawser/internal/utils/logging"

	"github.com/juju/ratelimit"
)

// directDownload streams the source straight to the destination file in
// fixed-size chunks, reporting progress whenever the response declared
// a positive Content-Length.
func (e *Engine) directDownload(ctx context.Context, task *models.DownloadTask, hdrs map[string]string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.SourceURL, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	for name, value := range hdrs {
		req.Header.Set(name, value)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.D(2, "Failed to close response body for %q: %v", task.SourceURL, err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPStatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	out, err := os.Create(task.DestinationPath)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			logging.E("Failed to close %q: %v", task.DestinationPath, err)
		}
	}()

	var body io.Reader = resp.Body
	if e.opts.RateLimitBps > 0 {
		bucket := ratelimit.NewBucketWithRate(float64(e.opts.RateLimitBps), e.opts.RateLimitBps)
		body = ratelimit.Reader(resp.Body, bucket)
	}

	total := resp.ContentLength
	var written int64
	buf := make([]byte, consts.DownloadChunk)

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("writing to %q: %w", task.DestinationPath, writeErr)
			}
			written += int64(n)

			if total > 0 {
				task.Progress = float64(written) / float64(total)
				if e.onProgress != nil {
					e.onProgress(task.ID, task.Progress)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("reading response body: %w", readErr)
		}
	}

	logging.D(1, "Streamed %d bytes to %s", written, task.DestinationPath)
	return nil
}
