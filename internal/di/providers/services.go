package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookpulse/bookpulse-server/internal/config"
	"github.com/bookpulse/bookpulse-server/internal/logger"
	"github.com/bookpulse/bookpulse-server/internal/notify"
	"github.com/bookpulse/bookpulse-server/internal/service"
	"github.com/bookpulse/bookpulse-server/internal/storage"
	"github.com/bookpulse/bookpulse-server/internal/validation"
)

// ProvideValidator provides the request payload validator.
func ProvideValidator(_ do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideBookService provides the book service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, v, log.Logger), nil
}

// ProvideCategoryService provides the category service.
func ProvideCategoryService(i do.Injector) (*service.CategoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCategoryService(storeHandle.Store, v, log.Logger), nil
}

// ProvideTagService provides the tag service.
func ProvideTagService(i do.Injector) (*service.TagService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTagService(storeHandle.Store, log.Logger), nil
}

// ProvideReviewService provides the review service.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewReviewService(storeHandle.Store, v, log.Logger), nil
}

// ProvideBookmarkService provides the bookmark service.
func ProvideBookmarkService(i do.Injector) (*service.BookmarkService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookmarkService(storeHandle.Store, log.Logger), nil
}

// ProvideUserService provides the user service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(storeHandle.Store, cfg.App.OwnerOpenID, log.Logger), nil
}

// ProvideCoverService provides the cover upload service.
func ProvideCoverService(i do.Injector) (*service.CoverService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	storageClient := do.MustInvoke[*storage.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCoverService(storeHandle.Store, storageClient, log.Logger), nil
}

// ProvideSystemService provides the system service.
func ProvideSystemService(i do.Injector) (*service.SystemService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	notifyClient := do.MustInvoke[*notify.Client](i)
	storageClient := do.MustInvoke[*storage.Client](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSystemService(storeHandle.Store, notifyClient, storageClient, v, log.Logger), nil
}
