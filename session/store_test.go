package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSetGetClear(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.Get("s1", OrderKey)
	assert.False(t, ok)

	store.Set("s1", OrderKey, "value")
	value, ok := store.Get("s1", OrderKey)
	require.True(t, ok)
	assert.Equal(t, "value", value)

	store.Clear("s1", OrderKey)
	_, ok = store.Get("s1", OrderKey)
	assert.False(t, ok)

	// Clearing a missing key or session is a no-op.
	store.Clear("s1", OrderKey)
	store.Clear("unknown", OrderKey)
}

func TestMemoryStoreSessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()

	store.Set("s1", OrderKey, "first")
	store.Set("s2", OrderKey, "second")

	value, ok := store.Get("s1", OrderKey)
	require.True(t, ok)
	assert.Equal(t, "first", value)

	store.Clear("s1", OrderKey)

	value, ok = store.Get("s2", OrderKey)
	require.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()

	store.Set("s1", OrderKey, 1)
	store.Set("s1", OrderKey, 2)

	value, ok := store.Get("s1", OrderKey)
	require.True(t, ok)
	assert.Equal(t, 2, value)
}
