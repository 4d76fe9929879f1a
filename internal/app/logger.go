package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/familypa-backend/internal/config"
)

// NewLogger builds the stderr logger and installs it as the slog default.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger writes JSON unless cfg asks for "text", which also adds source
// locations for local runs. Every record carries app and version.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level), AddSource: text}

	var h slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("app", "familypa", "version", Version)
}

// parseLevel accepts slog level names, case-insensitively, and falls back
// to info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
