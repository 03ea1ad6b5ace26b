package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	domcatalog "github.com/heithemdev/rime-couture-sub001/internal/domain/catalog"
)

// FileRepo fetches product candidates from a JSON snapshot file on
// disk. Used by deployments without a Redis backend; the storefront
// backend exports the snapshot on publish.
type FileRepo struct {
	path string
}

// NewFile creates a file-backed catalog repository.
func NewFile(path string) *FileRepo {
	return &FileRepo{path: path}
}

// FetchCandidates reads and decodes the snapshot file. The file is
// re-read on every fetch so a republished snapshot is picked up without
// a restart.
func (r *FileRepo) FetchCandidates(_ context.Context) ([]domcatalog.Product, error) {
	data, err := os.ReadFile(filepath.Clean(r.path))
	if err != nil {
		return nil, fmt.Errorf("read catalog snapshot file: %w", err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog snapshot file: %w", err)
	}
	return snap, nil
}
