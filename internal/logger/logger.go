package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/venturelink-platform/internal/config"
)

// NewLogger builds the process-wide slog.Logger: JSON lines at the configured
// level, tagged with the service name and environment so platform services
// can be told apart in aggregated output.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Logging.Level)

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
		// Source locations only at debug; production lines stay compact
		AddSource: level == slog.LevelDebug,
	})

	logger := slog.New(handler)
	if cfg.Application.Name != "" {
		logger = logger.With("service", cfg.Application.Name)
	}
	if cfg.Application.Env != "" {
		logger = logger.With("env", cfg.Application.Env)
	}

	logger.Info("Logger initialized", "level", level.String())
	return logger
}

// parseLevel maps the configured level name to a slog level, defaulting to
// info for unknown values
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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
