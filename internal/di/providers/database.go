package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/bookpulse/bookpulse-server/internal/logger"
	"github.com/bookpulse/bookpulse-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the in-memory catalog store, seeded with the initial
// catalog. The store is rebuilt from the seed on every start.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	db, err := store.New(log.Logger)
	if err != nil {
		return nil, err
	}

	if err := db.Seed(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("Store initialized and seeded")

	return &StoreHandle{Store: db}, nil
}
