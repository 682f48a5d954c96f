package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookpulse/bookpulse-server/internal/domain"
	"github.com/bookpulse/bookpulse-server/internal/identity"
)

func TestEnsureUser_CreatesRegularUser(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewUserService(deps.store, "owner-openid", deps.logger)

	user, err := svc.EnsureUser(context.Background(), identity.Identity{
		OpenID:      "line-12345",
		Name:        "Taro",
		LoginMethod: "line",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestEnsureUser_OwnerBecomesAdmin(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewUserService(deps.store, "owner-openid", deps.logger)

	user, err := svc.EnsureUser(context.Background(), identity.Identity{OpenID: "owner-openid"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	// Admin role sticks on subsequent sign-ins too.
	user, err = svc.EnsureUser(context.Background(), identity.Identity{OpenID: "owner-openid"})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestEnsureUser_NoOwnerConfigured(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewUserService(deps.store, "", deps.logger)

	user, err := svc.EnsureUser(context.Background(), identity.Identity{OpenID: "anyone"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
}
