package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// JSONLogger implements Logger with JSON Lines output.
type JSONLogger struct {
	mu     sync.Mutex
	output io.Writer
	level  LogLevel
	fields map[string]any
	closed bool
	file   *os.File
}

// NewJSONLogger creates a JSON logger writing to the given
// path. An empty path selects stdout. Parent directories are
// created as needed.
func NewJSONLogger(path string, level LogLevel) (*JSONLogger, error) {
	logger := &JSONLogger{
		level:  level,
		fields: make(map[string]any),
	}

	if path == "" {
		logger.output = os.Stdout
		return logger, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf(
			"failed to create log directory: %w", err,
		)
	}

	f, err := os.OpenFile(
		path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644,
	)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to open log file: %w", err,
		)
	}

	logger.output = f
	logger.file = f
	return logger, nil
}

func (j *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if level < j.level {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
	}

	if len(j.fields) > 0 || len(fields) > 0 {
		entry.Fields = make(
			map[string]any, len(j.fields)+len(fields),
		)
		for k, v := range j.fields {
			entry.Fields[k] = v
		}
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	fmt.Fprintln(j.output, string(data))
}

// Debug logs a debug-level message.
func (j *JSONLogger) Debug(msg string, fields ...Field) {
	j.log(LevelDebug, msg, fields...)
}

// Info logs an informational message.
func (j *JSONLogger) Info(msg string, fields ...Field) {
	j.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (j *JSONLogger) Warn(msg string, fields ...Field) {
	j.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (j *JSONLogger) Error(msg string, fields ...Field) {
	j.log(LevelError, msg, fields...)
}

// WithFields returns a copy of the logger with additional
// default fields.
func (j *JSONLogger) WithFields(fields ...Field) Logger {
	j.mu.Lock()
	defer j.mu.Unlock()

	combined := make(map[string]any, len(j.fields)+len(fields))
	for k, v := range j.fields {
		combined[k] = v
	}
	for _, f := range fields {
		combined[f.Key] = f.Value
	}

	return &JSONLogger{
		output: j.output,
		level:  j.level,
		fields: combined,
		file:   j.file,
	}
}

// Close closes the underlying file, if any.
func (j *JSONLogger) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closed {
		return nil
	}
	j.closed = true

	if j.file != nil {
		return j.file.Close()
	}
	return nil
}
