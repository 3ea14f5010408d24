// Package logger provides structured JSON logging for the scratchrank
// pipeline, plus a lightweight per-run stats tracker.
//
// Log entries are single-line JSON with a timestamp, level, message,
// and optional structured fields, written to standard error so stdout
// stays free for the rankings output. Stats collects
// counters (pages fetched, games parsed, games dropped) and timings
// (fetch durations) and is reported once at the end of a run.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Fields represents structured log fields
type Fields map[string]interface{}

// Entry is a single serialized log line
type Entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
}

// Logger writes leveled JSON log entries
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	out      io.Writer
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger that discards messages below minLevel.
func New(minLevel Level, out io.Writer) *Logger {
	return &Logger{minLevel: minLevel, out: out}
}

// SetDefault replaces the package-level logger used by the convenience
// functions. Called once from the CLI after flags are parsed.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) log(level Level, message string, fields Fields) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		// Plain-text fallback when a field value is unmarshalable
		l.mu.Lock()
		fmt.Fprintf(l.out, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, err)
		l.mu.Unlock()
		return
	}

	l.mu.Lock()
	fmt.Fprintln(l.out, string(data))
	l.mu.Unlock()
}

// Debug logs detailed diagnostic information
func (l *Logger) Debug(message string, fields Fields) { l.log(LevelDebug, message, fields) }

// Info logs general operational information
func (l *Logger) Info(message string, fields Fields) { l.log(LevelInfo, message, fields) }

// Warn logs recoverable problems, e.g. a skipped game
func (l *Logger) Warn(message string, fields Fields) { l.log(LevelWarn, message, fields) }

// Error logs failures that end the run
func (l *Logger) Error(message string, fields Fields) { l.log(LevelError, message, fields) }

// Package-level convenience functions using the default logger

func Debug(message string, fields Fields) { defaultLogger.Debug(message, fields) }
func Info(message string, fields Fields)  { defaultLogger.Info(message, fields) }
func Warn(message string, fields Fields)  { defaultLogger.Warn(message, fields) }
func Error(message string, fields Fields) { defaultLogger.Error(message, fields) }
