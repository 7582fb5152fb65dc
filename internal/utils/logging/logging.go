// Package logging wraps zerolog behind the short call style used
// throughout Rawser (I, S, W, E, D).
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	// Level gates D() calls: D(n, ...) prints only when n <= Level.
	Level int
)

// Setup reconfigures the logger output and debug level. Pass a non-nil
// file writer to tee console output into a log file.
func Setup(level int, logFile io.Writer) {
	Level = level

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	if logFile != nil {
		logger = zerolog.New(zerolog.MultiLevelWriter(console, logFile)).
			With().Timestamp().Logger()
		return
	}
	logger = zerolog.New(console).With().Timestamp().Logger()
}

// I logs an informational message.
func I(format string, args ...any) {
	logger.Info().Msg(fmt.Sprintf(format, args...))
}

// S logs a success message.
func S(format string, args ...any) {
	logger.Info().Str("result", "success").Msg(fmt.Sprintf(format, args...))
}

// W logs a warning.
func W(format string, args ...any) {
	logger.Warn().Msg(fmt.Sprintf(format, args...))
}

// E logs an error.
func E(format string, args ...any) {
	logger.Error().Msg(fmt.Sprintf(format, args...))
}

// D logs a debug message when the configured level is at least l.
func D(l int, format string, args ...any) {
	if l > Level {
		return
	}
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}
