package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mgvaldez/clinicajuridica-backend/internal/config"
)

// NewLogger builds the process logger from LogConfig and installs it
// as the slog default. "json" is the production format; anything else
// falls back to the text handler with source locations for local use.
// Output always goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// parseLevel maps the config string to a slog level. Unknown values
// mean info.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
