package identity

import (
	"encoding/hex"
	"testing"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyHex() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

func TestStaticResolver(t *testing.T) {
	r := NewStaticResolver("dev-user")

	id, err := r.Resolve("")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "dev-user", id.OpenID)
	assert.Equal(t, "static", id.LoginMethod)
}

func TestStaticResolver_EmptyOpenIDIsAnonymous(t *testing.T) {
	r := NewStaticResolver("")

	id, err := r.Resolve("Bearer whatever")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestNewTokenResolver_RejectsBadKey(t *testing.T) {
	_, err := NewTokenResolver("tooshort")
	require.Error(t, err)

	_, err = NewTokenResolver("zz" + testKeyHex()[2:])
	require.Error(t, err)
}

func TestTokenResolver_RoundTrip(t *testing.T) {
	r, err := NewTokenResolver(testKeyHex())
	require.NoError(t, err)

	token := r.IssueToken(Identity{
		OpenID:      "line-12345",
		Name:        "Taro",
		Email:       "taro@example.com",
		LoginMethod: "line",
	}, time.Minute)

	id, err := r.Resolve("Bearer " + token)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "line-12345", id.OpenID)
	assert.Equal(t, "Taro", id.Name)
	assert.Equal(t, "taro@example.com", id.Email)
	assert.Equal(t, "line", id.LoginMethod)
}

func TestTokenResolver_MissingHeaderIsAnonymous(t *testing.T) {
	r, err := NewTokenResolver(testKeyHex())
	require.NoError(t, err)

	id, err := r.Resolve("")
	require.NoError(t, err)
	assert.Nil(t, id)

	// Non-bearer schemes are also treated as anonymous.
	id, err = r.Resolve("Basic dXNlcjpwYXNz")
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestTokenResolver_RejectsExpiredToken(t *testing.T) {
	r, err := NewTokenResolver(testKeyHex())
	require.NoError(t, err)

	token := r.IssueToken(Identity{OpenID: "line-12345"}, -time.Minute)

	_, err = r.Resolve("Bearer " + token)
	require.Error(t, err)
}

func TestTokenResolver_RejectsForeignKey(t *testing.T) {
	r1, err := NewTokenResolver(testKeyHex())
	require.NoError(t, err)
	r2, err := NewTokenResolver(testKeyHex())
	require.NoError(t, err)

	token := r1.IssueToken(Identity{OpenID: "line-12345"}, time.Minute)

	_, err = r2.Resolve("Bearer " + token)
	require.Error(t, err)
}
