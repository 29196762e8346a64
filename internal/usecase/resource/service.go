// Package resource handles the read and delete paths: record lookup,
// listing, substring search, blob retrieval, and coupled deletion.
package resource

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lectern-io/lectern/internal/domain"
)

// Service coordinates catalog reads with blob access.
type Service struct {
	catalog CatalogRepository
	blobs   BlobRepository
	logger  *zap.Logger
}

// New creates a resource service.
func New(catalog CatalogRepository, blobs BlobRepository, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, blobs: blobs, logger: logger}
}

// Get returns a single record.
func (s *Service) Get(ctx context.Context, id string) (domain.ResourceRecord, error) {
	rec, err := s.catalog.Get(ctx, id)
	if err != nil {
		return domain.ResourceRecord{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *Service) List(ctx context.Context) ([]domain.ResourceRecord, error) {
	recs, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// Search returns records whose title, subject, or any tag contains query
// as a case-insensitive substring, newest first. A blank query behaves
// exactly like List.
func (s *Service) Search(ctx context.Context, query string) ([]domain.ResourceRecord, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.List(ctx)
	}

	recs, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search records: %w", err)
	}

	matched := make([]domain.ResourceRecord, 0, len(recs))
	for _, rec := range recs {
		if rec.Matches(query) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

// GetFile resolves a record's blob reference and returns the blob.
// Records without a physical file (legacy references) report NotFound.
func (s *Service) GetFile(ctx context.Context, recordID string) (domain.Blob, error) {
	rec, err := s.catalog.Get(ctx, recordID)
	if err != nil {
		return domain.Blob{}, fmt.Errorf("get record: %w", err)
	}
	if !rec.HasBlob() {
		return domain.Blob{}, fmt.Errorf("record %s has no stored file: %w", recordID, domain.ErrBlobNotFound)
	}

	blob, err := s.blobs.Get(ctx, rec.BlobID())
	if err != nil {
		return domain.Blob{}, fmt.Errorf("get blob %s: %w", rec.BlobID(), err)
	}
	return blob, nil
}

// Delete removes a record and its blob. Blob deletion failures are
// demoted to warnings; the catalog record is removed regardless.
func (s *Service) Delete(ctx context.Context, recordID string) error {
	rec, err := s.catalog.Get(ctx, recordID)
	if err != nil {
		return fmt.Errorf("get record: %w", err)
	}

	if rec.HasBlob() {
		if err := s.blobs.Delete(ctx, rec.BlobID()); err != nil {
			s.logger.Warn("could not delete blob, removing record anyway",
				zap.String("record_id", recordID),
				zap.String("blob_id", rec.BlobID()),
				zap.Error(err),
			)
		}
	}

	if err := s.catalog.Delete(ctx, recordID); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
