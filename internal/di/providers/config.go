package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookpulse/bookpulse-server/internal/config"
	"github.com/bookpulse/bookpulse-server/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(_ do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting BookPulse Server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"identity_mode", cfg.Identity.Mode,
	)

	return log, nil
}
