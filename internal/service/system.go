package service

import (
	"context"
	"log/slog"

	"github.com/bookpulse/bookpulse-server/internal/errors"
	"github.com/bookpulse/bookpulse-server/internal/notify"
	"github.com/bookpulse/bookpulse-server/internal/store"
	"github.com/bookpulse/bookpulse-server/internal/validation"
)

// Notifier is the slice of the notification client the system service needs.
type Notifier interface {
	Send(ctx context.Context, title, content string) error
	Configured() bool
}

// StorageStatus reports whether a collaborator is ready to use.
type StorageStatus interface {
	Configured() bool
}

// SystemService handles health reporting and owner notifications.
type SystemService struct {
	store     *store.Store
	notifier  Notifier
	storage   StorageStatus
	validator *validation.Validator
	logger    *slog.Logger
}

// NewSystemService creates a new system service.
func NewSystemService(store *store.Store, notifier Notifier, storage StorageStatus, validator *validation.Validator, logger *slog.Logger) *SystemService {
	return &SystemService{
		store:     store,
		notifier:  notifier,
		storage:   storage,
		validator: validator,
		logger:    logger,
	}
}

// ComponentHealth describes one component's status.
type ComponentHealth struct {
	Status string `json:"status"`
}

// Health reports the status of the store and collaborator configuration.
func (s *SystemService) Health(ctx context.Context) map[string]ComponentHealth {
	components := map[string]ComponentHealth{
		"store": {Status: "ok"},
	}
	if _, err := s.store.ListCategories(ctx); err != nil {
		components["store"] = ComponentHealth{Status: "error"}
	}

	components["storage"] = configuredStatus(s.storage.Configured())
	components["notify"] = configuredStatus(s.notifier.Configured())

	return components
}

func configuredStatus(ok bool) ComponentHealth {
	if ok {
		return ComponentHealth{Status: "ok"}
	}
	return ComponentHealth{Status: "unconfigured"}
}

// NotifyOwnerParams carries an owner notification payload.
type NotifyOwnerParams struct {
	Title   string `json:"title" validate:"required,max=1200"`
	Content string `json:"content" validate:"required,max=20000"`
}

// NotifyOwner sends a message to the site owner. Returns whether delivery
// succeeded: a failed delivery is logged and reported as false rather than
// failing the request, but validation and configuration problems are errors.
func (s *SystemService) NotifyOwner(ctx context.Context, params NotifyOwnerParams) (bool, error) {
	if err := s.validator.Validate(params); err != nil {
		return false, err
	}
	if !s.notifier.Configured() {
		return false, errors.Internal("notification channel is not configured")
	}

	if err := s.notifier.Send(ctx, params.Title, params.Content); err != nil {
		if errors.Is(err, errors.ErrBadRequest) {
			return false, err
		}
		s.logger.Warn("owner notification delivery failed", "error", err)
		return false, nil
	}

	return true, nil
}

// Ensure the notify client satisfies the interface.
var _ Notifier = (*notify.Client)(nil)
