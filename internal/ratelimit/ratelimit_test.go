package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_EnforcesBurst(t *testing.T) {
	krl := New(1, 2)

	assert.True(t, krl.Allow("client-a"))
	assert.True(t, krl.Allow("client-a"))
	assert.False(t, krl.Allow("client-a"))
}

func TestAllow_KeysAreIndependent(t *testing.T) {
	krl := New(1, 1)

	assert.True(t, krl.Allow("client-a"))
	assert.False(t, krl.Allow("client-a"))
	assert.True(t, krl.Allow("client-b"))
}

func TestWait_RespectsContextCancellation(t *testing.T) {
	krl := New(0.001, 1)
	require.True(t, krl.Allow("out"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := krl.Wait(ctx, "out")
	assert.Error(t, err)
}

func TestGetLimiter_ReusesExisting(t *testing.T) {
	krl := New(1, 1)

	first := krl.getLimiter("k")
	second := krl.getLimiter("k")
	assert.Same(t, first, second)
}
