package logging

import (
	"context"
	"sync"
)

// MockLogger is a logger implementation for testing
type MockLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// LogMessage represents a captured log message
type LogMessage struct {
	Level   string
	Message string
	Fields  map[string]any
}

// NewMockLogger creates a new mock logger for testing
func NewMockLogger() *MockLogger {
	return &MockLogger{
		Messages: make([]LogMessage, 0),
	}
}

// Debug records a debug message
func (m *MockLogger) Debug(_ context.Context, msg string, fields ...Field) {
	m.record("DEBUG", msg, fields)
}

// Info records an info message
func (m *MockLogger) Info(_ context.Context, msg string, fields ...Field) {
	m.record("INFO", msg, fields)
}

// Warn records a warning message
func (m *MockLogger) Warn(_ context.Context, msg string, fields ...Field) {
	m.record("WARN", msg, fields)
}

// Error records an error message
func (m *MockLogger) Error(_ context.Context, msg string, fields ...Field) {
	m.record("ERROR", msg, fields)
}

// WithFields returns a logger that adds persistent fields to the mock
func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &mockFieldLogger{base: m, fields: fields}
}

// WithError returns a logger with an error field
func (m *MockLogger) WithError(err error) Logger {
	if err == nil {
		return m
	}
	return m.WithFields(Field{Key: "error", Value: err.Error()})
}

// HasMessage reports whether a message with the given level and text was logged
func (m *MockLogger) HasMessage(level, msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, logged := range m.Messages {
		if logged.Level == level && logged.Message == msg {
			return true
		}
	}
	return false
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fieldMap := make(map[string]any, len(fields))
	for _, f := range fields {
		fieldMap[f.Key] = f.Value
	}

	m.Messages = append(m.Messages, LogMessage{
		Level:   level,
		Message: msg,
		Fields:  fieldMap,
	})
}

// mockFieldLogger forwards to the mock with persistent fields prepended
type mockFieldLogger struct {
	base   *MockLogger
	fields []Field
}

func (l *mockFieldLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.base.Debug(ctx, msg, l.merge(fields)...)
}

func (l *mockFieldLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.base.Info(ctx, msg, l.merge(fields)...)
}

func (l *mockFieldLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.base.Warn(ctx, msg, l.merge(fields)...)
}

func (l *mockFieldLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.base.Error(ctx, msg, l.merge(fields)...)
}

func (l *mockFieldLogger) WithFields(fields ...Field) Logger {
	return &mockFieldLogger{base: l.base, fields: l.merge(fields)}
}

func (l *mockFieldLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.WithFields(Field{Key: "error", Value: err.Error()})
}

func (l *mockFieldLogger) merge(fields []Field) []Field {
	merged := make([]Field, len(l.fields)+len(fields))
	copy(merged, l.fields)
	copy(merged[len(l.fields):], fields)
	return merged
}
