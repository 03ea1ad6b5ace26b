// Package catalog reads the published product snapshot the storefront
// backend maintains. The search engine treats it as a read-only bulk
// source; it never writes back.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	domcatalog "github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
)

// SnapshotKey is where the storefront backend publishes the catalog.
const SnapshotKey = "search:catalog:snapshot"

// store is the consumer interface for snapshot reads (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// Repo fetches product candidates from a key-value snapshot.
type Repo struct {
	store store
	key   string
}

// New creates a snapshot-backed catalog repository.
func New(s store) *Repo {
	return &Repo{store: s, key: SnapshotKey}
}

// WithKey overrides the snapshot key.
func (r *Repo) WithKey(key string) *Repo {
	r.key = key
	return r
}

// FetchCandidates returns every published, non-deleted product in the
// snapshot with translations, category, tags and variants attached.
func (r *Repo) FetchCandidates(ctx context.Context) ([]domcatalog.Product, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, fmt.Errorf("read catalog snapshot: %w", err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog snapshot: %w", err)
	}
	return snap, nil
}

func decodeSnapshot(data []byte) ([]domcatalog.Product, error) {
	var dto snapshotDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	products := make([]domcatalog.Product, 0, len(dto.Products))
	for i := range dto.Products {
		p := &dto.Products[i]
		if !p.listable() {
			continue
		}
		products = append(products, p.Product)
	}
	return products, nil
}
