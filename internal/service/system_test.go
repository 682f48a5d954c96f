package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookpulse/bookpulse-server/internal/errors"
)

func newSystemService(t *testing.T, notifier *fakeNotifier, storage *fakeStorage) *SystemService {
	deps := newTestDeps(t)
	return NewSystemService(deps.store, notifier, storage, deps.validator, deps.logger)
}

func TestHealth(t *testing.T) {
	svc := newSystemService(t, &fakeNotifier{configured: true}, &fakeStorage{configured: false})

	components := svc.Health(context.Background())
	assert.Equal(t, "ok", components["store"].Status)
	assert.Equal(t, "ok", components["notify"].Status)
	assert.Equal(t, "unconfigured", components["storage"].Status)
}

func TestNotifyOwner_Delivered(t *testing.T) {
	notifier := &fakeNotifier{configured: true}
	svc := newSystemService(t, notifier, &fakeStorage{})

	delivered, err := svc.NotifyOwner(context.Background(), NotifyOwnerParams{
		Title:   "New book registered",
		Content: "Clean Code was added",
	})
	require.NoError(t, err)
	assert.True(t, delivered)
	assert.Equal(t, 1, notifier.calls)
}

func TestNotifyOwner_ValidatesLengths(t *testing.T) {
	svc := newSystemService(t, &fakeNotifier{configured: true}, &fakeStorage{})
	ctx := context.Background()

	_, err := svc.NotifyOwner(ctx, NotifyOwnerParams{
		Title:   strings.Repeat("a", 1201),
		Content: "ok",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadRequest))

	_, err = svc.NotifyOwner(ctx, NotifyOwnerParams{
		Title:   "ok",
		Content: strings.Repeat("a", 20001),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrBadRequest))

	delivered, err := svc.NotifyOwner(ctx, NotifyOwnerParams{
		Title:   strings.Repeat("a", 1200),
		Content: strings.Repeat("b", 20000),
	})
	require.NoError(t, err)
	assert.True(t, delivered)
}

func TestNotifyOwner_Unconfigured(t *testing.T) {
	svc := newSystemService(t, &fakeNotifier{configured: false}, &fakeStorage{})

	_, err := svc.NotifyOwner(context.Background(), NotifyOwnerParams{Title: "t", Content: "c"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInternal))
}

func TestNotifyOwner_DeliveryFailureIsNotAnError(t *testing.T) {
	notifier := &fakeNotifier{configured: true, err: errors.Internal("push channel down")}
	svc := newSystemService(t, notifier, &fakeStorage{})

	delivered, err := svc.NotifyOwner(context.Background(), NotifyOwnerParams{Title: "t", Content: "c"})
	require.NoError(t, err)
	assert.False(t, delivered)
}
