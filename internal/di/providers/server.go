package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/bookpulse/bookpulse-server/internal/api"
	"github.com/bookpulse/bookpulse-server/internal/config"
	"github.com/bookpulse/bookpulse-server/internal/identity"
	"github.com/bookpulse/bookpulse-server/internal/logger"
	"github.com/bookpulse/bookpulse-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	resolver := do.MustInvoke[identity.Resolver](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Book:     do.MustInvoke[*service.BookService](i),
		Category: do.MustInvoke[*service.CategoryService](i),
		Tag:      do.MustInvoke[*service.TagService](i),
		Review:   do.MustInvoke[*service.ReviewService](i),
		Bookmark: do.MustInvoke[*service.BookmarkService](i),
		User:     do.MustInvoke[*service.UserService](i),
		Cover:    do.MustInvoke[*service.CoverService](i),
		System:   do.MustInvoke[*service.SystemService](i),
	}

	handler := api.NewServer(storeHandle.Store, services, resolver, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
