package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss reports a key that is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache is a string key-value store with optional TTL. Implementations are
// safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}
