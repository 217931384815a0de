// Package slogx configures structured logging for the service and carries
// request-scoped loggers through context.
package slogx

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Service string
	Version string
	Env     string // "dev" enables source locations
	Level   string // "debug", "info", "warn", "error"
	Format  string // "json" (default) or "text"
}

// New builds the process logger, stamps it with service identity, and
// installs it as the slog default.
func New(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     levelFor(cfg.Level),
		AddSource: cfg.Env == "dev",
	}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With(
		slog.String("service", cfg.Service),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)
	slog.SetDefault(logger)
	return logger
}

func levelFor(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
