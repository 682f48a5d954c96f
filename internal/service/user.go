package service

import (
	"context"
	"log/slog"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/errors"
	"github.com/bookpulse/bookpulse-server/internal/identity"
	"github.com/bookpulse/bookpulse-server/internal/store"
)

// UserService maintains user records resolved from external identities.
type UserService struct {
	store       *store.Store
	ownerOpenID string
	logger      *slog.Logger
}

// NewUserService creates a new user service. ownerOpenID names the external
// identity that is granted the admin role on sign-in.
func NewUserService(store *store.Store, ownerOpenID string, logger *slog.Logger) *UserService {
	return &UserService{
		store:       store,
		ownerOpenID: ownerOpenID,
		logger:      logger,
	}
}

// EnsureUser upserts the user record for a resolved identity and returns it.
// The configured owner identity always carries the admin role.
func (s *UserService) EnsureUser(ctx context.Context, id identity.Identity) (*domain.User, error) {
	input := store.UpsertUserInput{
		OpenID:      id.OpenID,
		Name:        id.Name,
		Email:       id.Email,
		LoginMethod: id.LoginMethod,
	}
	if s.ownerOpenID != "" && id.OpenID == s.ownerOpenID {
		input.Role = domain.RoleAdmin
	}

	user, err := s.store.UpsertUser(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "upsert user")
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, errors.NotFoundf("user %d not found", id)
		}
		return nil, errors.Wrap(err, errors.CodeInternal, "get user")
	}
	return user, nil
}
