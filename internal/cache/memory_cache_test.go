package cache_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/pasale/product-catalog/internal/cache"
	"github.com/pasale/product-catalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryCache(defaultTTL time.Duration) cache.Cache {
	return cache.NewMemoryCache(&config.CacheConfig{
		Backend:         config.CacheBackendMemory,
		DefaultTTL:      defaultTTL,
		CleanupInterval: time.Minute,
	})
}

func TestMemoryCache(t *testing.T) {
	ctx := t.Context()
	testValue := TestData{Field1: "memory", Field2: 7}

	t.Run("Set then Get", func(t *testing.T) {
		// Arrange
		memCache := newMemoryCache(time.Minute)
		require.NoError(t, memCache.Set(ctx, "k", testValue, time.Minute))

		// Act
		var result TestData
		found, err := memCache.Get(ctx, "k", &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, testValue, result)
	})

	t.Run("Miss", func(t *testing.T) {
		memCache := newMemoryCache(time.Minute)

		var result TestData
		found, err := memCache.Get(ctx, "absent", &result)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, result)
	})

	t.Run("Entry is never returned past its expiry", func(t *testing.T) {
		memCache := newMemoryCache(time.Minute)
		require.NoError(t, memCache.Set(ctx, "short", testValue, 20*time.Millisecond))

		time.Sleep(60 * time.Millisecond)

		var result TestData
		found, err := memCache.Get(ctx, "short", &result)

		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Non-positive ttl uses default", func(t *testing.T) {
		memCache := newMemoryCache(20 * time.Millisecond)
		require.NoError(t, memCache.Set(ctx, "default", testValue, 0))

		var result TestData
		found, err := memCache.Get(ctx, "default", &result)
		require.NoError(t, err)
		assert.True(t, found)

		time.Sleep(60 * time.Millisecond)

		found, err = memCache.Get(ctx, "default", &result)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Failure - Marshal Error", func(t *testing.T) {
		memCache := newMemoryCache(time.Minute)

		err := memCache.Set(ctx, "chan", make(chan int), time.Minute)

		require.Error(t, err)
		var jsonErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &jsonErr)
	})

	t.Run("Failure - Unmarshal Error", func(t *testing.T) {
		memCache := newMemoryCache(time.Minute)
		require.NoError(t, memCache.Set(ctx, "k", map[string]string{"field2": "not_an_int"}, time.Minute))

		var result TestData
		found, err := memCache.Get(ctx, "k", &result)

		require.Error(t, err)
		assert.False(t, found)
		assert.Contains(t, err.Error(), "failed to unmarshal cache data for key k")
	})

	t.Run("Close drops entries", func(t *testing.T) {
		memCache := newMemoryCache(time.Minute)
		require.NoError(t, memCache.Set(ctx, "k", testValue, time.Minute))

		require.NoError(t, memCache.Close())

		var result TestData
		found, err := memCache.Get(ctx, "k", &result)
		require.NoError(t, err)
		assert.False(t, found)
	})
}
