package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file. The TUI owns the
// terminal, so interactive commands log here instead of stderr.
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// SessionOpened logs the start of an editing session
func (l *Logger) SessionOpened(mode string, files int) {
	l.Info("session opened",
		"mode", mode,
		"files", files)
}

// DocumentLoaded logs a successful document load
func (l *Logger) DocumentLoaded(path string, sections int) {
	l.Info("document loaded",
		"path", path,
		"sections", sections)
}

// DocumentSaved logs a successful document write
func (l *Logger) DocumentSaved(path string, bytes int, duration time.Duration) {
	l.Info("document saved",
		"path", path,
		"bytes", bytes,
		"duration", duration.Round(time.Millisecond))
}

// MoveCommitted logs a committed structural move
func (l *Logger) MoveCommitted(path, heading string, level int) {
	l.Info("move committed",
		"path", path,
		"heading", heading,
		"level", level)
}

// MoveCanceled logs a canceled structural move
func (l *Logger) MoveCanceled(path, heading string) {
	l.Debug("move canceled",
		"path", path,
		"heading", heading)
}

// SelectionRestored logs a selection restored from saved state
func (l *Logger) SelectionRestored(path, heading string) {
	l.Debug("selection restored",
		"path", path,
		"heading", heading)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// StateError logs a state-related error
func (l *Logger) StateError(operation string, err error) {
	l.Error("state error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(dir string, wrapWidth int, extensions []string) {
	l.Debug("config loaded",
		"dir", dir,
		"wrap_width", wrapWidth,
		"extensions", extensions)
}

// PlanLoaded logs a loaded edit plan
func (l *Logger) PlanLoaded(path string, edits, files int) {
	l.Info("edit plan loaded",
		"path", path,
		"edits", edits,
		"files", files)
}

// PlanExported logs an exported edit plan
func (l *Logger) PlanExported(path string, edits int) {
	l.Info("edit plan exported",
		"path", path,
		"edits", edits)
}

// Skipped logs when a file is skipped
func (l *Logger) Skipped(file, reason string) {
	l.Debug("file skipped",
		"file", file,
		"reason", reason)
}
