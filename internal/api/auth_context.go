package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/bookpulse/bookpulse-server/internal/errors"
	"github.com/bookpulse/bookpulse-server/internal/identity"
	"github.com/bookpulse/bookpulse-server/internal/service"
)

// ctxKey is the type for context keys to avoid collisions.
type ctxKey string

// userIDKey is the context key for the signed-in user ID.
const userIDKey ctxKey = "userID"

// GetUserID returns the signed-in user ID from context.
// Returns 401 error if the request carried no usable identity.
func GetUserID(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok || userID == 0 {
		return 0, huma.Error401Unauthorized("Sign-in required")
	}
	return userID, nil
}

// setUserID stores the user ID in context.
func setUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// identityMiddleware resolves the Authorization header into a local user
// record and stores its ID in the request context. Requests with no usable
// identity continue without a user in context; handlers use GetUserID to
// reject where sign-in is required.
func identityMiddleware(resolver identity.Resolver, users *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, err := resolver.Resolve(r.Header.Get("Authorization"))
			if err != nil || ident == nil {
				// Invalid or absent identity - continue anonymously.
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.EnsureUser(r.Context(), *ident)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(setUserID(r.Context(), user.ID)))
		})
	}
}

// RequireAdmin validates the user is signed in and has the admin role.
// Returns the user ID if successful, error otherwise.
func (s *Server) RequireAdmin(ctx context.Context) (int64, error) {
	userID, err := GetUserID(ctx)
	if err != nil {
		return 0, err
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return 0, huma.Error401Unauthorized("User not found")
	}

	if !user.IsAdmin() {
		return 0, domainerrors.Forbidden("Admin access required")
	}

	return userID, nil
}
