// Package di provides dependency injection configuration for the BookPulse server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/bookpulse/bookpulse-server/internal/config"
	"github.com/bookpulse/bookpulse-server/internal/di/providers"
	"github.com/bookpulse/bookpulse-server/internal/identity"
	"github.com/bookpulse/bookpulse-server/internal/logger"
	"github.com/bookpulse/bookpulse-server/internal/notify"
	"github.com/bookpulse/bookpulse-server/internal/rankings"
	"github.com/bookpulse/bookpulse-server/internal/service"
	"github.com/bookpulse/bookpulse-server/internal/storage"
	"github.com/bookpulse/bookpulse-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Store
	do.Provide(injector, providers.ProvideStore)

	// Identity
	do.Provide(injector, providers.ProvideIdentityResolver)

	// Outbound clients
	do.Provide(injector, providers.ProvideStorageClient)
	do.Provide(injector, providers.ProvideNotifyClient)
	do.Provide(injector, providers.ProvideRankingsClient)

	// Business services
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideCategoryService)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvideBookmarkService)
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideCoverService)
	do.Provide(injector, providers.ProvideSystemService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[identity.Resolver](injector)

	// Outbound clients
	_ = do.MustInvoke[*storage.Client](injector)
	_ = do.MustInvoke[*notify.Client](injector)
	_ = do.MustInvoke[*rankings.Client](injector)

	// Business services
	_ = do.MustInvoke[*service.BookService](injector)
	_ = do.MustInvoke[*service.CategoryService](injector)
	_ = do.MustInvoke[*service.TagService](injector)
	_ = do.MustInvoke[*service.ReviewService](injector)
	_ = do.MustInvoke[*service.BookmarkService](injector)
	_ = do.MustInvoke[*service.UserService](injector)
	_ = do.MustInvoke[*service.CoverService](injector)
	_ = do.MustInvoke[*service.SystemService](injector)

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
