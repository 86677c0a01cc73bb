package observability

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/couchcryptid/temperature-analyzer/internal/config"
)

// NewLogger builds a structured logger from the configured level and format.
// LOG_FORMAT=json produces machine-readable output for scheduled runs;
// anything else gets a colorized text handler for interactive use.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
