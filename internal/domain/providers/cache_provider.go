package providers

import (
	"context"
)

// CacheProvider defines the interface for caching catalog reads. User
// positions are never cached; the freshness rule requires a new fix per
// request.
type CacheProvider interface {
	// Get retrieves a value from cache
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with an expiration in seconds
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error
}
