package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bookpulse/bookpulse-server/internal/store"
	"github.com/bookpulse/bookpulse-server/internal/validation"
)

// testDeps bundles the shared fixtures for service tests.
type testDeps struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()

	s, err := store.New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return testDeps{
		store:     s,
		validator: validation.New(),
		logger:    slog.New(slog.DiscardHandler),
	}
}

// fakeStorage records Put calls and returns a canned URL.
type fakeStorage struct {
	calls      int
	lastKey    string
	lastData   []byte
	lastType   string
	url        string
	err        error
	configured bool
}

func (f *fakeStorage) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	f.calls++
	f.lastKey = key
	f.lastData = data
	f.lastType = contentType
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func (f *fakeStorage) Configured() bool { return f.configured }

// fakeNotifier records Send calls.
type fakeNotifier struct {
	calls      int
	lastTitle  string
	err        error
	configured bool
}

func (f *fakeNotifier) Send(_ context.Context, title, _ string) error {
	f.calls++
	f.lastTitle = title
	return f.err
}

func (f *fakeNotifier) Configured() bool { return f.configured }
