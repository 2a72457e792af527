package config

import (
	"io"
	"log/slog"
)

// NewLogger builds a text or JSON slog logger at the given level. Unknown
// levels fall back to info.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level

	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if formatStr == FormatJSON {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// Logger builds the logger described by c.
func (c *Config) Logger(outW io.Writer) *slog.Logger {
	return NewLogger(c.LogLevel, c.LogFormat, outW)
}
