package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookpulse/bookpulse-server/internal/domain"
)

func TestUpsertUser_CreatesWithDefaultRole(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user, err := s.UpsertUser(ctx, UpsertUserInput{
		OpenID:      "line-12345",
		Name:        "Taro",
		Email:       "taro@example.com",
		LoginMethod: "line",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "line-12345", user.OpenID)
	assert.False(t, user.LastSignedIn.IsZero())
}

func TestUpsertUser_UpdatesExistingByOpenID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.UpsertUser(ctx, UpsertUserInput{OpenID: "line-12345", Name: "Taro"})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	second, err := s.UpsertUser(ctx, UpsertUserInput{OpenID: "line-12345", Email: "taro@example.com"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Taro", second.Name) // Empty input field left as-is
	assert.Equal(t, "taro@example.com", second.Email)
	assert.True(t, second.LastSignedIn.After(first.LastSignedIn))
}

func TestUpsertUser_PreservesRoleUnlessOverridden(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.UpsertUser(ctx, UpsertUserInput{OpenID: "owner-1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	// Plain upsert keeps admin.
	user, err := s.UpsertUser(ctx, UpsertUserInput{OpenID: "owner-1", Name: "Owner"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)

	// Explicit role overrides.
	user, err = s.UpsertUser(ctx, UpsertUserInput{OpenID: "owner-1", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestGetUserByOpenID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.UpsertUser(ctx, UpsertUserInput{OpenID: "line-12345", Name: "Taro"})
	require.NoError(t, err)

	found, err := s.GetUserByOpenID(ctx, "line-12345")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = s.GetUserByOpenID(ctx, "nope")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUser_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
