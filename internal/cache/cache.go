// Package cache provides TTL response caching for the external recipe API,
// with an in-process backend and an optional Redis backend.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss indicates the requested key was not found or has expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a key/value store with per-entry TTL. Entries are owned by the
// cache: callers get back a copy of the stored bytes and must not assume
// anything beyond key → byte-identical value within the TTL window.
type Cache interface {
	// Get returns the cached value for key, or ErrCacheMiss if the key is
	// absent or its entry has expired. Expiry is checked lazily here.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, overwriting any existing entry, with an
	// expiry of now + ttl.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Clear drops all entries. Used for test isolation, not on the request path.
	Clear(ctx context.Context) error
}
