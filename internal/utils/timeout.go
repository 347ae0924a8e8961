package utils

import (
	"context"
	"time"
)

const (
	DefaultDBTimeout    = 5 * time.Second
	DefaultCacheTimeout = 2 * time.Second
)

func WithDBTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultDBTimeout)
}

// WithCacheTimeout bounds a single round trip to the cache store.
func WithCacheTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, DefaultCacheTimeout)
}
