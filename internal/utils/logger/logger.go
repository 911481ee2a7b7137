package logger

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/slog"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// New собирает логгер под окружение: local - цветной вывод, dev - JSON с debug,
// prod - JSON начиная с info. Unknown environments behave like prod.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter is New writing to w.
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	return build(env, w, defaultLevel(env))
}

// NewWithLevel is NewWithWriter with an explicit minimum level ("debug",
// "info", "warn", "error", or offsets such as "info+2"). An empty level keeps
// the environment default.
func NewWithLevel(env, level string, w io.Writer) (*slog.Logger, error) {
	if level == "" {
		return NewWithWriter(env, w), nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return build(env, w, lvl), nil
}

func defaultLevel(env string) slog.Level {
	switch env {
	case envLocal, "", envDev:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func build(env string, w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if env == envLocal || env == "" {
		return slog.New(newPrettyHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}
