// Package domain holds the sentinel errors shared across layers.
package domain

import "errors"

var (
	// ErrInvalidRequest signals malformed search parameters.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCatalogUnavailable signals that the catalog fetch failed after retries.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrRateLimited signals a rate limit hit.
	ErrRateLimited = errors.New("rate limited")
)
