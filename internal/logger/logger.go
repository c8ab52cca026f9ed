// Package logger provides leveled diagnostic logging on stderr.
//
// Stdout belongs to the probe result, error lines and MCP frames, so log
// output never goes there.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// EnvLevel names the environment variable that selects the log level.
const EnvLevel = "CLIPPY_LOG_LEVEL"

var (
	mu         sync.Mutex
	levelVar   = new(slog.LevelVar)
	slogLogger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelVar}))
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	slogLogger = newLogger(w)
}

// SetDebug enables or disables debug level logging.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// ConfigureFromEnv applies CLIPPY_LOG_LEVEL when it is set.
func ConfigureFromEnv() {
	switch strings.ToLower(os.Getenv(EnvLevel)) {
	case "debug":
		levelVar.Set(slog.LevelDebug)
	case "warn":
		levelVar.Set(slog.LevelWarn)
	case "error":
		levelVar.Set(slog.LevelError)
	case "info":
		levelVar.Set(slog.LevelInfo)
	}
}

func logWithLevel(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	l := slogLogger
	mu.Unlock()

	if !l.Enabled(context.Background(), level) {
		return
	}
	l.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message
func Debug(format string, args ...interface{}) {
	logWithLevel(slog.LevelDebug, format, args...)
}

// Info writes an info message
func Info(format string, args ...interface{}) {
	logWithLevel(slog.LevelInfo, format, args...)
}

// Warn writes a warning message
func Warn(format string, args ...interface{}) {
	logWithLevel(slog.LevelWarn, format, args...)
}

// Error writes an error message
func Error(format string, args ...interface{}) {
	logWithLevel(slog.LevelError, format, args...)
}
