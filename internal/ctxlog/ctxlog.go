// Package ctxlog threads a slog.Logger through context.Context so every
// stage of resolution logs against the same configured instance.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to keep this context key collision-free.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context. A missing logger is a
// wiring bug, not a runtime condition, so it panics rather than falling
// back to the global default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}
