package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Debug(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, map[string]any)  {}
func (NopLogger) Warn(string, map[string]any)  {}
func (NopLogger) Debug(string, map[string]any) {}
func (NopLogger) Error(string, map[string]any) {}

type writerLogger struct {
	w io.Writer
}

func (l writerLogger) write(level, msg string, fields map[string]any) {
	if l.w == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %-5s %s", time.Now().Format(time.RFC3339), level, msg)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, fields[k])
	}
	_, _ = fmt.Fprintln(l.w, b.String())
}

// NewWriterLogger builds a logger that writes one line per entry to w.
func NewWriterLogger(w io.Writer) Logger {
	return writerLogger{w: w}
}

func (l writerLogger) Info(msg string, fields map[string]any)  { l.write("INFO", msg, fields) }
func (l writerLogger) Warn(msg string, fields map[string]any)  { l.write("WARN", msg, fields) }
func (l writerLogger) Debug(msg string, fields map[string]any) { l.write("DEBUG", msg, fields) }
func (l writerLogger) Error(msg string, fields map[string]any) { l.write("ERROR", msg, fields) }

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, fields map[string]any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, fields)
}

// Debugf is a compatibility helper for format-style debug logging.
func Debugf(enabled bool, logger Logger, format string, args ...any) {
	Debug(enabled, logger, fmt.Sprintf(format, args...), nil)
}

// Info writes an info log when logger is non-nil.
func Info(logger Logger, msg string, fields map[string]any) {
	if logger == nil {
		return
	}
	logger.Info(msg, fields)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, fields map[string]any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, fields)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, fields map[string]any) {
	if logger == nil {
		return
	}
	logger.Error(msg, fields)
}
