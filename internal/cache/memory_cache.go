package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pasale/product-catalog/internal/config"
	gocache "github.com/patrickmn/go-cache"
)

// memoryCache keeps JSON-encoded entries in process, so a hit decodes into a
// fresh value exactly like the redis backend does.
type memoryCache struct {
	store *gocache.Cache
	cfg   *config.CacheConfig
}

func NewMemoryCache(cfg *config.CacheConfig) Cache {
	return &memoryCache{
		store: gocache.New(cfg.DefaultTTL, cfg.CleanupInterval),
		cfg:   cfg,
	}
}

func (m *memoryCache) Get(_ context.Context, key string, value any) (bool, error) {

	raw, found := m.store.Get(key)
	if !found {
		return false, nil
	}

	data, ok := raw.([]byte)
	if !ok {
		return false, fmt.Errorf("unexpected cache entry type %T for key %s", raw, key)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = m.cfg.DefaultTTL
	}

	m.store.Set(key, data, ttl)

	return nil
}

func (m *memoryCache) Close() error {
	m.store.Flush()
	return nil
}
