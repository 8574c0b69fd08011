package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// New - builds the application logger. Records go to w, which must not be the game's output stream.
func New(conf *config.Config, w io.Writer) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(conf.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(conf.LogFormat, "text") {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}
