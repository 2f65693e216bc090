// Package logging defines the structured-logging interface used by the blog
// client. Implementations wrap log/slog or zerolog.
package logging

import (
	"context"
	"io"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "request finished", "method", "GET", "path", "/articles")
type Logger interface {
	// Debug logs verbose diagnostics such as per-request traces.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatConsole = "console"
)

// New builds a Logger writing to w. format selects the backend: "console"
// uses zerolog's ConsoleWriter, "json" and "text" use slog handlers.
// Unknown levels fall back to info.
func New(w io.Writer, level, format string) Logger {
	switch strings.ToLower(format) {
	case FormatConsole:
		return NewZerologConsole(w, level)
	case FormatJSON:
		return NewSlogJSON(w, level)
	default:
		return NewSlogText(w, level)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogText(io.Discard, "error")
}
