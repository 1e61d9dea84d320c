package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module provides the service configuration and reports the effective settings at startup.
var Module = fx.Options(
	fx.Provide(Load),
	fx.Invoke(logEffective),
)

func logEffective(cfg *Config, logger *slog.Logger) {
	backend := "memory"
	if cfg.DatabaseURI != "" {
		backend = "postgres"
	}
	logger.Info("configuration loaded",
		slog.String("addr", cfg.RunAddress),
		slog.String("storage", backend),
		slog.String("log_level", cfg.LogLevel.String()),
		slog.Bool("seed_users", cfg.SeedUsers),
		slog.Duration("shutdown_timeout", cfg.ShutdownTimeout),
	)
}
