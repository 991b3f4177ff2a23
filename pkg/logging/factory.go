package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level  string
	Format string // "json" or "text"
}

// Factory creates logger instances with consistent configuration.
// All log output goes to stderr; stdout is reserved for command output.
type Factory struct {
	config  Config
	Handler slog.Handler // Exposed for testing
}

// NewFactory creates a new logger factory
func NewFactory(cfg Config) *Factory {
	levelVar := new(slog.LevelVar)
	levelVar.Set(parseLevel(cfg.Level))

	opts := &slog.HandlerOptions{
		Level: levelVar,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return &Factory{
		config:  cfg,
		Handler: handler,
	}
}

// CreateLogger creates a new logger instance
func (f *Factory) CreateLogger() Logger {
	if f.Handler == nil {
		return NewMockLogger()
	}
	return NewLogger(f.Handler)
}

// CreateComponentLogger creates a logger tagged with a component name
func (f *Factory) CreateComponentLogger(component string) Logger {
	return f.CreateLogger().WithFields(Field{Key: "component", Value: component})
}

// parseLevel converts a level string to slog.Level, defaulting to warn
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
