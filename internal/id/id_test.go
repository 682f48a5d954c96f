package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	id, err := Generate("req")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "req-"))
	assert.Len(t, id, len("req-")+21)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := Generate("x")
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestSuffix(t *testing.T) {
	s, err := Suffix(8)
	require.NoError(t, err)
	assert.Len(t, s, 8)
}
