// Package logging defines the structured logging surface the client wires
// through its layers. The slog-backed implementation is used at runtime; the
// nop variant serves as the default when no logger is injected.
package logging

import "context"

// Logger is a context-aware structured logger. The variadic args are
// alternating keys and values, as in slog:
//
//	log.Info(ctx, "restored cached session", "user", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always carries the given pairs.
	With(args ...any) Logger
}
