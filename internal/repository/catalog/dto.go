package catalog

import (
	"time"

	domcatalog "github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
)

// statusPublished is the only product status surfaced to search.
const statusPublished = "published"

// snapshotDTO is the wire shape of the catalog snapshot.
type snapshotDTO struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Products    []productDTO `json:"products"`
}

// productDTO carries a product plus the lifecycle fields the snapshot
// includes but the engine never scores.
type productDTO struct {
	domcatalog.Product
	Status    string     `json:"status"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// listable reports whether the product belongs in search results.
func (p *productDTO) listable() bool {
	return p.Status == statusPublished && p.DeletedAt == nil
}
