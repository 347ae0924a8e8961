package cache

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// DefaultTTL is how long a cache-aside entry lives when no timeout is given.
const DefaultTTL = 300 * time.Second

// ErrUnavailable marks failures of the cache store itself, as opposed to
// failures of the value producer.
var ErrUnavailable = errors.New("cache unavailable")

type Cache interface {
	// Get decodes the entry stored under key into value and reports whether it was present.
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	ProductKeyPrefix = "product"
	listSegment      = "list"
)

// ProductKey names the entry holding one product of one owner.
func ProductKey(userID, productID int64) string {
	return Key(ProductKeyPrefix, strconv.FormatInt(userID, 10)+":"+strconv.FormatInt(productID, 10))
}

// ProductListKey names the entry holding one page of an owner's products.
// Product ids are numeric so they never collide with the list segment.
func ProductListKey(userID int64, page int) string {
	return Key(ProductKeyPrefix, strconv.FormatInt(userID, 10)+":"+listSegment+":"+strconv.Itoa(page))
}
