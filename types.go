package lectern

import "github.com/lectern-io/lectern/internal/domain"

// IngestInput describes a document to ingest. Filename becomes the
// resource title; UploaderID falls back to the configured default when
// empty.
type IngestInput struct {
	Filename    string
	ContentType string
	Subject     string
	UploaderID  string
	Content     []byte
}

// IngestResult reports the outcome of an ingestion.
type IngestResult struct {
	RecordID string
	BlobID   string
	Tags     []string
}

// Resource is a catalog record for an ingested document.
type Resource struct {
	ID         string
	Title      string
	Subject    string
	Type       string
	UploaderID string
	Tags       []string
	BlobID     string
}

// File is the stored content of a resource.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            // "ok" or "error"
	Checks map[string]string // component -> "ok"/"error"
}

func resourceFromDomain(rec domain.ResourceRecord) Resource {
	return Resource{
		ID:         rec.ID(),
		Title:      rec.Title(),
		Subject:    rec.Subject(),
		Type:       rec.ResourceType(),
		UploaderID: rec.UploaderID(),
		Tags:       rec.Tags(),
		BlobID:     rec.BlobID(),
	}
}

func resourcesFromDomain(recs []domain.ResourceRecord) []Resource {
	out := make([]Resource, len(recs))
	for i, rec := range recs {
		out[i] = resourceFromDomain(rec)
	}
	return out
}
