// Package logging defines the structured-logging interface used across
// gophpass. Two backends are provided: log/slog and zerolog.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "password changed", "user_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// Backend names accepted by New.
const (
	BackendSlog    = "slog"
	BackendZerolog = "zerolog"
)

// New builds a JSON logger writing to w. level is one of debug, info, warn,
// error (case-insensitive); an empty level means info.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(backend) {
	case "", BackendSlog:
		var lvl slog.Level
		if level != "" {
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", level, err)
			}
		}
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), nil
	case BackendZerolog:
		lvl := zerolog.InfoLevel
		if level != "" {
			var err error
			if lvl, err = zerolog.ParseLevel(strings.ToLower(level)); err != nil {
				return nil, fmt.Errorf("invalid log level %q: %w", level, err)
			}
		}
		zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
		return NewZerologLogger(zl), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZerologLogger(zerolog.Nop())
}
