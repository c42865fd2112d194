// Package logger builds the process-wide *slog.Logger.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Environment names understood by Setup. Anything else is treated as dev.
const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

// Setup returns a *slog.Logger configured for the given environment and
// installs it as the slog default, so package-level slog.Info calls in
// the handlers go through it too.
//
// Development (dev): human-readable text output at DEBUG level.
// Staging: JSON output at DEBUG level.
// Production (prod): JSON output at INFO level.
func Setup(env string) *slog.Logger {
	log := New(os.Stdout, env)
	slog.SetDefault(log)
	return log
}

// New builds the logger for env writing to w without touching the default.
func New(w io.Writer, env string) *slog.Logger {
	switch env {
	case EnvProd:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case EnvStaging:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
