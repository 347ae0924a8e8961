package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pasale/product-catalog/internal/metrics"
	"golang.org/x/sync/singleflight"
)

var ErrEmptyKey = errors.New("cache key must not be empty")

// Producer computes the value for a key on a cache miss.
type Producer[T any] func(ctx context.Context) (T, error)

// Aside is a read-through front for a Cache. Concurrent misses on the same key
// each run their producer unless single-flight is enabled.
type Aside struct {
	store      Cache
	defaultTTL time.Duration
	group      *singleflight.Group
	logger     *slog.Logger
}

type AsideOption func(*Aside)

// WithDefaultTTL replaces DefaultTTL for calls that pass a non-positive ttl.
func WithDefaultTTL(ttl time.Duration) AsideOption {
	return func(a *Aside) {
		if ttl > 0 {
			a.defaultTTL = ttl
		}
	}
}

// WithSingleFlight makes concurrent misses on one key share a single producer call.
// The shared call does not observe the cancellation of any individual caller.
func WithSingleFlight() AsideOption {
	return func(a *Aside) {
		a.group = &singleflight.Group{}
	}
}

func WithLogger(logger *slog.Logger) AsideOption {
	return func(a *Aside) {
		a.logger = logger
	}
}

func NewAside(store Cache, opts ...AsideOption) *Aside {
	a := &Aside{
		store:      store,
		defaultTTL: DefaultTTL,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// GetOrSet returns the value cached under key, or runs produce, stores its
// result for ttl and returns it. A failed produce is returned unchanged and
// nothing is written. Errors from the store are returned untranslated.
func GetOrSet[T any](ctx context.Context, a *Aside, key string, ttl time.Duration, produce Producer[T]) (T, error) {
	var zero T

	if key == "" {
		return zero, ErrEmptyKey
	}

	if ttl <= 0 {
		ttl = a.defaultTTL
	}

	var cached T

	found, err := a.store.Get(ctx, key, &cached)
	if err != nil {
		metrics.RecordCacheResult(metrics.CacheError)
		a.logger.Error("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return zero, err
	}

	if found {
		metrics.RecordCacheResult(metrics.CacheHit)
		a.logger.Debug("Cache hit", slog.String("key", key))
		return cached, nil
	}

	metrics.RecordCacheResult(metrics.CacheMiss)
	a.logger.Debug("Cache miss", slog.String("key", key))

	if a.group == nil {
		return fill(ctx, a, key, ttl, produce)
	}

	// the flight is shared, so one caller going away must not fail the others
	flightCtx := context.WithoutCancel(ctx)

	shared, err, _ := a.group.Do(key, func() (any, error) {
		return fill(flightCtx, a, key, ttl, produce)
	})
	if err != nil {
		return zero, err
	}

	value, ok := shared.(T)
	if !ok {
		return zero, fmt.Errorf("single-flight result for key %s has type %T", key, shared)
	}

	return value, nil
}

func fill[T any](ctx context.Context, a *Aside, key string, ttl time.Duration, produce Producer[T]) (T, error) {
	var zero T

	value, err := produce(ctx)
	if err != nil {
		return zero, err
	}

	if err := a.store.Set(ctx, key, value, ttl); err != nil {
		metrics.RecordCacheResult(metrics.CacheError)
		a.logger.Error("Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		return zero, err
	}

	return value, nil
}
