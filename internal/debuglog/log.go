// Package debuglog writes leveled diagnostics to a file. The terminal is
// owned by the UI while the program runs, so nothing here ever writes to
// stdout or stderr.
package debuglog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Level orders messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a configuration string to a Level. Unknown strings yield
// LevelOff so a typo never starts writing files unexpectedly.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelOff
	}
}

// Logger is a leveled logger bound to one output.
type Logger struct {
	mu     sync.Mutex
	level  Level
	out    *log.Logger
	closer io.Closer
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "dsviz ", log.LstdFlags|log.Lmicroseconds)}
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// Close releases the underlying file, if the logger owns one.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	l.out = nil
	return err
}

func (l *Logger) logf(level Level, suffix, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.out == nil || level < l.level || l.level == LevelOff {
		return
	}
	l.out.Printf("[%s] %s%s", level, fmt.Sprintf(format, args...), suffix)
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, "", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, "", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, "", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, "", format, args...) }

// Fields are key/value pairs appended to a message.
type Fields map[string]any

func (f Fields) String() string {
	if len(f) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, f[k])
	}
	return " [" + strings.Join(parts, " ") + "]"
}

// Entry is a logger with fields attached.
type Entry struct {
	logger *Logger
	fields Fields
}

// WithFields attaches fields to every message logged through the entry.
func (l *Logger) WithFields(fields Fields) *Entry {
	return &Entry{logger: l, fields: fields}
}

// With returns a copy of e with additional fields.
func (e *Entry) With(fields Fields) *Entry {
	merged := make(Fields, len(e.fields)+len(fields))
	for k, v := range e.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Entry{logger: e.logger, fields: merged}
}

func (e *Entry) Debugf(format string, args ...any) {
	e.logger.logf(LevelDebug, e.fields.String(), format, args...)
}

func (e *Entry) Infof(format string, args ...any) {
	e.logger.logf(LevelInfo, e.fields.String(), format, args...)
}

func (e *Entry) Warnf(format string, args ...any) {
	e.logger.logf(LevelWarn, e.fields.String(), format, args...)
}

func (e *Entry) Errorf(format string, args ...any) {
	e.logger.logf(LevelError, e.fields.String(), format, args...)
}

var std = New(io.Discard, LevelOff)

// Setup replaces the package logger. With LevelOff nothing is opened. An
// empty path defaults to ~/.dsviz/dsviz.log.
func Setup(level Level, path string) error {
	if err := std.Close(); err != nil {
		return fmt.Errorf("closing previous log: %w", err)
	}

	if level == LevelOff {
		std.SetLevel(LevelOff)
		return nil
	}

	if path == "" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, ".dsviz", "dsviz.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file %s: %w", path, err)
	}

	std.mu.Lock()
	std.out = log.New(f, "dsviz ", log.LstdFlags|log.Lmicroseconds)
	std.closer = f
	std.mu.Unlock()
	std.SetLevel(level)
	return nil
}

func Close() error { return std.Close() }

func Debugf(format string, args ...any) { std.Debugf(format, args...) }
func Infof(format string, args ...any)  { std.Infof(format, args...) }
func Warnf(format string, args ...any)  { std.Warnf(format, args...) }
func Errorf(format string, args ...any) { std.Errorf(format, args...) }

// WithFields attaches fields to the package logger.
func WithFields(fields Fields) *Entry { return std.WithFields(fields) }
