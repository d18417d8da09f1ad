// Package logger configures structured logging and carries request-scoped loggers in a context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type contextKey string

const loggerKey contextKey = "logger"

// ParseLevel maps LOG_LEVEL values to slog levels. Unknown values fall back to info.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New builds a JSON logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Init installs a stdout JSON logger as the slog default. Call once at startup.
func Init(levelStr string) *slog.Logger {
	level, ok := ParseLevel(levelStr)
	l := New(os.Stdout, level)
	slog.SetDefault(l)
	if !ok {
		l.Warn("invalid LOG_LEVEL, defaulting to info", "configured_level", levelStr)
	}
	l.Info("logger initialized", "level", level.String())
	return l
}

// FromContext returns the request logger stored in ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// ToContext stores l in ctx.
func ToContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}
