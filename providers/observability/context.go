package observability

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys to avoid collisions
type contextKey struct{}

var loggerContextKey = contextKey{}

// ContextWithLogger returns a new context with the given logger attached.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext extracts the logger from the context. It never returns
// nil: when no logger is present (or the context is nil) a discard logger is
// returned so callers can log without a nil check.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.New(slog.DiscardHandler)
	}
	logger, _ := ctx.Value(loggerContextKey).(*slog.Logger)
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
