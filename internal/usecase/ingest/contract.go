package ingest

import (
	"context"

	"github.com/lectern-io/lectern/internal/domain"
)

// BlobWriter stores raw payloads durably.
type BlobWriter interface {
	Put(ctx context.Context, content []byte, filename, contentType string) (string, error)
}

// CatalogWriter inserts catalog records and assigns their identifiers.
type CatalogWriter interface {
	Insert(ctx context.Context, rec domain.ResourceRecord) (string, error)
}

// TextExtractor converts a document payload into plain text.
type TextExtractor interface {
	Text(data []byte) (string, error)
}

// KeywordExtractor derives ranked tags from plain text. It never fails;
// unusable input yields an empty list.
type KeywordExtractor interface {
	ExtractN(text string, topN int) []string
}
