package providers

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/bookpulse/bookpulse-server/internal/config"
	"github.com/bookpulse/bookpulse-server/internal/identity"
	"github.com/bookpulse/bookpulse-server/internal/logger"
)

// ProvideIdentityResolver provides the resolver that maps Authorization
// headers to external identities, selected by the configured mode.
func ProvideIdentityResolver(i do.Injector) (identity.Resolver, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	switch cfg.Identity.Mode {
	case "static":
		log.Info("Identity resolution in static mode", "open_id", cfg.Identity.StaticOpenID)
		return identity.NewStaticResolver(cfg.Identity.StaticOpenID), nil
	case "token":
		resolver, err := identity.NewTokenResolver(cfg.Identity.TokenKey)
		if err != nil {
			return nil, fmt.Errorf("create token resolver: %w", err)
		}
		log.Info("Identity resolution in token mode")
		return resolver, nil
	default:
		return nil, fmt.Errorf("unknown identity mode %q", cfg.Identity.Mode)
	}
}
