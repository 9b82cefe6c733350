// Package logging provides structured JSON logging with levels, categories
// and request-scoped contexts.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log entry.
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level. Unknown names yield INFO.
func ParseLevel(raw string) Level {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Entry represents a single log entry with structured fields.
type Entry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	App       string         `json:"app,omitempty"`
	Category  string         `json:"category"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Duration  *int64         `json:"duration_ms,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// Logger is a structured logger that writes one JSON line per entry to every
// configured writer.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	writers  []io.Writer
	app      string
	now      func() time.Time
}

// New creates a Logger. With no writers it logs to stdout; under js/wasm the
// Go runtime forwards stdout to the browser console.
func New(app string, minLevel Level, writers ...io.Writer) *Logger {
	if len(writers) == 0 {
		writers = []io.Writer{os.Stdout}
	}
	return &Logger{
		minLevel: minLevel,
		writers:  writers,
		app:      app,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New("", ERROR+1, io.Discard)
}

// Log writes a log entry at the specified level.
func (l *Logger) Log(level Level, category, message string, fields map[string]any) {
	l.emit(level, Entry{Category: category, Message: message, Fields: fields})
}

// Debug logs a debug message.
func (l *Logger) Debug(category, message string, fields map[string]any) {
	l.Log(DEBUG, category, message, fields)
}

// Info logs an info message.
func (l *Logger) Info(category, message string, fields map[string]any) {
	l.Log(INFO, category, message, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(category, message string, fields map[string]any) {
	l.Log(WARN, category, message, fields)
}

// Error logs an error message.
func (l *Logger) Error(category, message string, err error, fields map[string]any) {
	entry := Entry{Category: category, Message: message, Fields: fields}
	if err != nil {
		entry.Error = err.Error()
	}
	l.emit(ERROR, entry)
}

func (l *Logger) emit(level Level, entry Entry) {
	if l == nil || level < l.minLevel {
		return
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.now()
	}
	entry.Level = level.String()
	if entry.App == "" {
		entry.App = l.app
	}
	l.write(entry)
}

func (l *Logger) write(entry Entry) {
	data, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal log entry: %v\n", err)
		return
	}
	data = append(data, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.writers {
		_, _ = w.Write(data)
	}
}

// LogContext carries a request ID, category and fields across several entries.
type LogContext struct {
	logger    *Logger
	requestID string
	category  string
	fields    map[string]any
}

// WithRequestID creates a logging context with a request ID.
func (l *Logger) WithRequestID(requestID string) *LogContext {
	return &LogContext{
		logger:    l,
		requestID: requestID,
		fields:    make(map[string]any),
	}
}

// WithCategory sets the category for this context.
func (c *LogContext) WithCategory(category string) *LogContext {
	c.category = category
	return c
}

// WithField adds a field to this context.
func (c *LogContext) WithField(key string, value any) *LogContext {
	if c.fields == nil {
		c.fields = make(map[string]any)
	}
	c.fields[key] = value
	return c
}

// Info logs an info message with the context's request ID and fields.
func (c *LogContext) Info(message string) {
	c.logger.emit(INFO, c.entry(message))
}

// Warn logs a warning message with the context's request ID and fields.
func (c *LogContext) Warn(message string) {
	c.logger.emit(WARN, c.entry(message))
}

// Error logs an error message with the context's request ID and fields.
func (c *LogContext) Error(message string, err error) {
	entry := c.entry(message)
	if err != nil {
		entry.Error = err.Error()
	}
	c.logger.emit(ERROR, entry)
}

func (c *LogContext) entry(message string) Entry {
	fields := make(map[string]any, len(c.fields))
	for k, v := range c.fields {
		fields[k] = v
	}
	return Entry{
		Category:  c.category,
		Message:   message,
		Fields:    fields,
		RequestID: c.requestID,
	}
}
