package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"iltz/internal/platform/config"
)

const serviceName = "iltz"

// New returns a structured logger writing to w. Every record carries the
// service name and a run_id unique to this process, so lines from one
// invocation can be grouped after the fact.
func New(w io.Writer, cfg config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(
		"service", serviceName,
		"run_id", uuid.NewString(),
	)
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
