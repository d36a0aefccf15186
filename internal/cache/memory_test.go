package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set("key", []byte("value"), time.Minute))
	data, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), data)
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache()

	_, ok := c.Get("missing")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set("key", []byte("value"), -time.Second))
	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set("key", []byte("value"), time.Minute))
	require.NoError(t, c.Delete("key"))
	_, ok := c.Get("key")
	assert.False(t, ok)
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set("a", []byte("1"), time.Minute))
	require.NoError(t, c.Set("b", []byte("2"), time.Minute))
	require.NoError(t, c.Clear())

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
