package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/pasale/product-catalog/internal/cache"
	"github.com/pasale/product-catalog/internal/config"
	"github.com/pasale/product-catalog/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: cache.DefaultTTL}

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func TestRedisCacheGet(t *testing.T) {
	key := cache.ProductKey(5, 42)
	view := models.ProductView{ID: 42, User: 5, Category: 3, ProductName: "Sencha", UnitPrice: "12.50", Quantity: 4}
	payload, err := json.Marshal(view)
	require.NoError(t, err)

	tests := []struct {
		name        string
		expect      func(mock redismock.ClientMock)
		wantFound   bool
		wantView    models.ProductView
		unavailable bool
		errContains string
	}{
		{
			name:      "hit decodes the stored view",
			expect:    func(mock redismock.ClientMock) { mock.ExpectGet(key).SetVal(string(payload)) },
			wantFound: true,
			wantView:  view,
		},
		{
			name:   "redis.Nil is a miss",
			expect: func(mock redismock.ClientMock) { mock.ExpectGet(key).SetErr(redis.Nil) },
		},
		{
			name:        "connection failure is unavailable",
			expect:      func(mock redismock.ClientMock) { mock.ExpectGet(key).SetErr(errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")) },
			unavailable: true,
			errContains: "failed to get key product:5:42 from redis",
		},
		{
			name:        "corrupt payload",
			expect:      func(mock redismock.ClientMock) { mock.ExpectGet(key).SetVal("{not json") },
			errContains: "failed to unmarshal cache data for key product:5:42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock, _ := newRedisStore(t)
			tt.expect(mock)

			var got models.ProductView
			found, err := store.Get(t.Context(), key, &got)

			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				assert.Equal(t, tt.unavailable, errors.Is(err, cache.ErrUnavailable))
				assert.False(t, found)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantView, got)
		})
	}
}

func TestRedisCacheSet(t *testing.T) {
	key := cache.ProductListKey(5, 2)
	page := models.NewPaginatedResponse([]models.ProductView{{ID: 11, User: 5, ProductName: "Matcha", UnitPrice: "3.00"}}, 11, 2, models.DefaultPageSize)
	payload, err := json.Marshal(page)
	require.NoError(t, err)

	t.Run("explicit ttl", func(t *testing.T) {
		store, mock, _ := newRedisStore(t)
		mock.ExpectSet(key, payload, time.Minute).SetVal("OK")

		assert.NoError(t, store.Set(t.Context(), key, page, time.Minute))
	})

	t.Run("non-positive ttl uses the configured default", func(t *testing.T) {
		store, mock, cfg := newRedisStore(t)
		mock.ExpectSet(key, payload, cfg.DefaultTTL).SetVal("OK")

		assert.NoError(t, store.Set(t.Context(), key, page, 0))
	})

	t.Run("unencodable value", func(t *testing.T) {
		store, _, _ := newRedisStore(t)

		err := store.Set(t.Context(), key, make(chan int), time.Minute)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal value for key product:5:list:2")
		assert.False(t, errors.Is(err, cache.ErrUnavailable))
	})

	t.Run("write failure is unavailable", func(t *testing.T) {
		store, mock, _ := newRedisStore(t)
		cause := errors.New("READONLY You can't write against a read only replica.")
		mock.ExpectSet(key, payload, time.Minute).SetErr(cause)

		err := store.Set(t.Context(), key, page, time.Minute)

		require.Error(t, err)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, cache.ErrUnavailable)
	})
}

func TestRedisCacheClose(t *testing.T) {
	store, _, _ := newRedisStore(t)
	assert.NoError(t, store.Close())
}
