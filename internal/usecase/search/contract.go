package search

import (
	"context"
	"time"

	"github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
)

// CatalogSource is the bulk candidate fetch the engine scores against.
// Failures classified as transient are retried per the service's retry
// policy; anything else propagates immediately.
type CatalogSource interface {
	FetchCandidates(ctx context.Context) ([]catalog.Product, error)
}

// Cache is the consumer interface for response caching (ISP).
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
