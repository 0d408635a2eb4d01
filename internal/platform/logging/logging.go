// Package logging provides the process-wide slog setup and context-scoped
// logger plumbing shared by services and adapters.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// contextKey is a private type to prevent collisions in context values.
type contextKey string

const loggerKey = contextKey("logger")

// NewLogger builds the JSON logger used across the application. Debug level
// is enabled outside production.
func NewLogger(isProduction bool) *slog.Logger {
	level := slog.LevelDebug
	if isProduction {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromCtx retrieves the scoped logger from the context, falling back to the
// default logger when none was attached.
func FromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
