// ABOUTME: Debug logging wrapper around slog levels for verbose CLI output
// ABOUTME: Global level via SetLevel; writes to stderr to keep stdout machine-readable

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var level atomic.Int64

// out is swappable for tests.
var out io.Writer = os.Stderr

func init() {
	level.Store(int64(LevelWarn))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// Level returns the current log level.
func Level() slog.Level {
	return slog.Level(level.Load())
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if Level() > LevelDebug {
		return
	}
	fmt.Fprintf(out, "[DEBUG] "+format+"\n", args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if Level() > LevelInfo {
		return
	}
	fmt.Fprintf(out, "[INFO] "+format+"\n", args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if Level() > LevelWarn {
		return
	}
	fmt.Fprintf(out, "[WARN] "+format+"\n", args...)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	fmt.Fprintf(out, "[ERROR] "+format+"\n", args...)
}
