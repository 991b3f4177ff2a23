// Package logging provides structured logging for the greet tool.
package logging

import (
	"context"
	"log/slog"
	"time"
)

// Logger is our main logging interface
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	// Structured logging helpers
	WithFields(fields ...Field) Logger
	WithError(err error) Logger
}

// Field represents a structured log field
type Field struct {
	Key   string
	Value any
}

// slogLogger implements Logger on top of a slog.Handler
type slogLogger struct {
	handler slog.Handler
	fields  []Field
}

// NewLogger creates a logger backed by the given slog handler
func NewLogger(handler slog.Handler) Logger {
	return &slogLogger{
		handler: handler,
		fields:  nil,
	}
}

// Debug logs a debug message
func (l *slogLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelDebug, msg, fields...)
}

// Info logs an info message
func (l *slogLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelInfo, msg, fields...)
}

// Warn logs a warning message
func (l *slogLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelWarn, msg, fields...)
}

// Error logs an error message
func (l *slogLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.log(ctx, slog.LevelError, msg, fields...)
}

// WithFields returns a new logger with additional persistent fields
func (l *slogLogger) WithFields(fields ...Field) Logger {
	newFields := make([]Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	return &slogLogger{
		handler: l.handler,
		fields:  newFields,
	}
}

// WithError returns a new logger with an error field
func (l *slogLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.WithFields(Field{Key: "error", Value: err.Error()})
}

// log performs the actual logging
func (l *slogLogger) log(ctx context.Context, level slog.Level, msg string, fields ...Field) {
	if ctx == nil {
		ctx = context.Background()
	}

	if !l.handler.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(l.fields)+len(fields))
	for _, f := range l.fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Key, f.Value))
	}

	record := slog.NewRecord(time.Now(), level, msg, 0)
	record.AddAttrs(attrs...)

	_ = l.handler.Handle(ctx, record)
}
