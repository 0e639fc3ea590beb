package logging

import (
	"io"
	"log/slog"
	"strings"

	"votingsystem/internal/platform/config"
)

// New builds the process logger from config. Every record carries the
// service name.
func New(cfg config.Config, out io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{Level: ParseLevel(cfg.LogLevel)}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(cfg.LogFormat), "json") {
		handler = slog.NewJSONHandler(out, options)
	} else {
		handler = slog.NewTextHandler(out, options)
	}
	return slog.New(handler).With("service", cfg.ServiceName)
}

// ParseLevel maps a level name to slog. Unknown names fall back to info.
func ParseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
