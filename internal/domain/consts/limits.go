package consts

import "time"

// Download transport limits.
const (
	DownloadTimeout = 1 * time.Hour
	DownloadChunk   = 64 * 1024

	// Base unit for exponential retry backoff (2^attempt * unit).
	BackoffUnit = 1 * time.Second

	// Number of trailing ffmpeg stderr lines retained for error reports.
	ProcTailLines = 10

	// Filenames longer than this are truncated, extension preserved.
	MaxFilenameLen = 200
)

// FFmpegBin is the default external remux binary.
const FFmpegBin = "ffmpeg"
