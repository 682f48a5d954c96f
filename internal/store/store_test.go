package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestStore creates a fresh in-memory store closed when the test ends.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}
