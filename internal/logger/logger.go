// Package logger provides the structured slog logger used across the
// service. All logs are written in JSON format.
//
// When a log directory is configured, logs go to <logDir>/system.log and the
// file is rotated by size; otherwise they go to stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 50
	maxLogBackups = 5
	maxLogAgeDays = 28
)

// NewSystemLogger creates a JSON slog.Logger. With an empty logDir it writes
// to stderr; otherwise to a rotating <logDir>/system.log. The directory is
// created if it does not exist.
func NewSystemLogger(logDir string, level slog.Level) (*slog.Logger, error) {
	w, err := systemWriter(logDir)
	if err != nil {
		return nil, err
	}
	return New(w, level), nil
}

// New creates a JSON slog.Logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Component returns a child logger tagged with the given component name so
// log lines from each notifier can be told apart.
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

func systemWriter(logDir string) (io.Writer, error) {
	if logDir == "" {
		return os.Stderr, nil
	}
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("creating log directory %q: %w", logDir, err)
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "system.log"),
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}, nil
}
