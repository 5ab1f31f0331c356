// Package ctxlog carries a slog.Logger through context.Context so the
// generator pipeline can log without threading a logger argument through
// every call.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

// key is an unexported type so the context key cannot collide with keys
// from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context. Pipeline entry points are
// responsible for installing one; a missing logger is a programmer error.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	panic("ctxlog: logger missing from context")
}

// Discard returns a context with a logger that drops everything. Intended
// for tests.
func Discard(ctx context.Context) context.Context {
	return WithLogger(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)))
}
