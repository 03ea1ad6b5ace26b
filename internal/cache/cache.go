// Package cache defines the generic key/value contract the search
// service caches responses through. Two drivers implement it: a
// process-local bounded store (memory) and a Redis-backed store (redis).
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrKeyNotFound signals a cache miss or an expired entry.
var ErrKeyNotFound = errors.New("cache: key not found")

// Store is a TTL key/value store with no persistence guarantee across
// process restarts.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Pinger checks backend connectivity. The memory driver is always
// reachable; the redis driver pings the server.
type Pinger interface {
	Ping(ctx context.Context) error
}
