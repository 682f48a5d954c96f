package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookpulse/bookpulse-server/internal/config"
	"github.com/bookpulse/bookpulse-server/internal/logger"
	"github.com/bookpulse/bookpulse-server/internal/notify"
	"github.com/bookpulse/bookpulse-server/internal/rankings"
	"github.com/bookpulse/bookpulse-server/internal/storage"
)

// ProvideStorageClient provides the object storage client for cover images.
// Unconfigured storage is allowed; uploads fail until a base URL is set.
func ProvideStorageClient(i do.Injector) (*storage.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := storage.NewClient(cfg.Storage.BaseURL, cfg.Storage.APIKey, log.Logger)
	if !client.Configured() {
		log.Warn("Object storage not configured - cover uploads will fail")
	}

	return client, nil
}

// ProvideNotifyClient provides the owner notification client.
func ProvideNotifyClient(i do.Injector) (*notify.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := notify.NewClient(cfg.Notify.BaseURL, cfg.Notify.APIKey, log.Logger)
	if !client.Configured() {
		log.Warn("Notification channel not configured - owner notifications will fail")
	}

	return client, nil
}

// ProvideRankingsClient provides the client for the external rankings service.
func ProvideRankingsClient(i do.Injector) (*rankings.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return rankings.NewClient(cfg.Rankings.BaseURL, log.Logger), nil
}
