package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/prayer-loadouts/internal/errors"
)

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps a level name to its slog level
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", name)
	}
}

// NewLogger builds a logger writing to w in the configured format
func (c LoggingConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, errors.InvalidArgumentf("unknown log format %q", c.Format)
	}
}
