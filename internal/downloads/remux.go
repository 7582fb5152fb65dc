package downloads

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"rawser/internal/domain/consts"
	"rawser/internal/models"
	"rawser/internal/utils/logging"
)

// remuxDownload hands adaptive-streaming sources to ffmpeg for a
// stream-copy remux into an mp4 container. The synthesized headers ride
// along via -headers so the fetch looks identical to the browser's.
func (e *Engine) remuxDownload(ctx context.Context, task *models.DownloadTask, kind models.MediaKind, hdrs map[string]string) error {
	inputURL := task.SourceURL

	// A master playlist lists variants rather than segments; resolve it
	// to the best media playlist first when a resolver is attached.
	if kind == models.KindHLSManifest && e.resolveHLS != nil {
		if resolved, err := e.resolveHLS(ctx, inputURL, hdrs); err != nil {
			logging.W("HLS variant resolution failed for %q, using original URL: %v", inputURL, err)
		} else if resolved != "" {
			inputURL = resolved
		}
	}

	outputPath := task.DestinationPath

	cmd := exec.CommandContext(ctx, e.opts.FFmpegPath,
		"-y",
		"-headers", headerBlock(hdrs),
		"-i", inputURL,
		"-c", "copy",
		"-bsf:a", "aac_adtstoasc",
		outputPath,
	)
	logging.D(1, "Executing remux command: %s", cmd.String())

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe error: %w", err)
	}

	tailCh := make(chan []string, 1)
	go scanProcTail(stderr, tailCh)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("command start error: %w", err)
	}

	tail := <-tailCh
	if err := cmd.Wait(); err != nil {
		return &ExternalProcessError{
			Bin:      e.opts.FFmpegPath,
			ExitCode: cmd.ProcessState.ExitCode(),
			Tail:     strings.Join(tail, "\n"),
		}
	}

	task.Progress = 1.0
	return nil
}

// scanProcTail consumes the process diagnostic stream line by line,
// keeping only the trailing lines for error reporting. The stream is
// never buffered whole.
func scanProcTail(r io.Reader, out chan<- []string) {
	scanner := bufio.NewScanner(r)

	tail := make([]string, 0, consts.ProcTailLines)
	for scanner.Scan() {
		if len(tail) == consts.ProcTailLines {
			tail = append(tail[:0], tail[1:]...)
		}
		tail = append(tail, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		logging.D(2, "Scanner error on process output: %v", err)
	}
	out <- tail
}

// headerBlock joins headers into the CRLF-separated block ffmpeg
// expects, sorted so the built command is deterministic.
func headerBlock(hdrs map[string]string) string {
	names := make([]string, 0, len(hdrs))
	for name := range hdrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(hdrs[name])
		b.WriteString("\r\n")
	}
	return b.String()
}

// forceMP4 swaps whatever extension the resolved filename carried for
// .mp4, the remux output container.
func forceMP4(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".mp4"
}
