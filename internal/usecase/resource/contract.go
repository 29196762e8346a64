package resource

import (
	"context"

	"github.com/lectern-io/lectern/internal/domain"
)

// CatalogRepository reads and deletes catalog records.
type CatalogRepository interface {
	Get(ctx context.Context, id string) (domain.ResourceRecord, error)
	List(ctx context.Context) ([]domain.ResourceRecord, error)
	Delete(ctx context.Context, id string) error
}

// BlobRepository reads and deletes stored blobs.
type BlobRepository interface {
	Get(ctx context.Context, id string) (domain.Blob, error)
	Delete(ctx context.Context, id string) error
}
