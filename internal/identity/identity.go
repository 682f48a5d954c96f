// Package identity resolves the caller's external identity from a request.
//
// The site does not manage credentials itself. An upstream identity provider
// authenticates users; this package only extracts who the caller is. Two
// resolvers exist: a static one returning a fixed development identity and a
// token-verifying one for deployments.
package identity

import (
	"strings"
)

// Identity is the external identity carried by an authenticated request.
type Identity struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

// Resolver extracts an identity from an Authorization header value.
// A nil identity with a nil error means the request is anonymous.
type Resolver interface {
	Resolve(authorization string) (*Identity, error)
}

// StaticResolver returns a fixed identity for every request.
// Used in development so the API is exercisable without a token provider.
type StaticResolver struct {
	identity Identity
}

// NewStaticResolver creates a resolver that always returns the given identity.
func NewStaticResolver(openID string) *StaticResolver {
	return &StaticResolver{
		identity: Identity{
			OpenID:      openID,
			Name:        "Development User",
			LoginMethod: "static",
		},
	}
}

// Resolve returns the fixed identity. Anonymous only when openID is empty.
func (r *StaticResolver) Resolve(string) (*Identity, error) {
	if r.identity.OpenID == "" {
		return nil, nil
	}
	id := r.identity
	return &id, nil
}

// bearerToken extracts the token from a "Bearer ..." authorization value.
// Returns "" when the header is absent or not a bearer scheme.
func bearerToken(authorization string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authorization, prefix))
}
