package domain

import (
	"fmt"
	"strings"
)

// SchemaVersion is the record schema written by the current code.
// Version 1 records predate the blob reference field; they may carry the
// reference under a legacy field name or hold a sentinel instead of an id.
const SchemaVersion = 2

// NoBlobSentinel is the legacy placeholder some v1 records store instead
// of a real blob reference.
const NoBlobSentinel = "none"

// ResourceRecord is the catalog entry describing one ingested resource
// (immutable value object).
type ResourceRecord struct {
	id            string
	title         string
	subject       string
	resourceType  string
	uploaderID    string
	tags          []string
	blobID        string
	schemaVersion int
}

// NewResourceRecord validates and creates a record for ingestion.
// The identifier is assigned later, at catalog write time.
func NewResourceRecord(
	title, subject, resourceType, uploaderID string, tags []string, blobID string,
) (ResourceRecord, error) {
	if title == "" {
		return ResourceRecord{}, fmt.Errorf("title is required")
	}
	if resourceType == "" {
		return ResourceRecord{}, fmt.Errorf("resource type is required")
	}
	if NormalizeBlobRef(blobID) == "" {
		return ResourceRecord{}, fmt.Errorf("blob reference is required")
	}
	return ResourceRecord{
		title:         title,
		subject:       subject,
		resourceType:  resourceType,
		uploaderID:    uploaderID,
		tags:          cloneTags(tags),
		blobID:        blobID,
		schemaVersion: SchemaVersion,
	}, nil
}

// ReconstructResourceRecord creates a record without validation (storage
// hydration). The blob reference is normalized here so legacy sentinels
// never leak past the repository boundary.
func ReconstructResourceRecord(
	id, title, subject, resourceType, uploaderID string,
	tags []string, blobID string, schemaVersion int,
) ResourceRecord {
	return ResourceRecord{
		id:            id,
		title:         title,
		subject:       subject,
		resourceType:  resourceType,
		uploaderID:    uploaderID,
		tags:          tags,
		blobID:        NormalizeBlobRef(blobID),
		schemaVersion: schemaVersion,
	}
}

// WithID returns a copy carrying the assigned identifier.
func (r ResourceRecord) WithID(id string) ResourceRecord {
	r.id = id
	return r
}

// ID returns the record identifier.
func (r ResourceRecord) ID() string { return r.id }

// Title returns the record title.
func (r ResourceRecord) Title() string { return r.title }

// Subject returns the record subject.
func (r ResourceRecord) Subject() string { return r.subject }

// ResourceType returns the resource type tag, e.g. "pdf".
func (r ResourceRecord) ResourceType() string { return r.resourceType }

// UploaderID returns the uploader identifier.
func (r ResourceRecord) UploaderID() string { return r.uploaderID }

// Tags returns the derived tags in extraction rank order.
func (r ResourceRecord) Tags() []string { return r.tags }

// BlobID returns the normalized blob reference, "" when the record has no
// physical file (legacy records).
func (r ResourceRecord) BlobID() string { return r.blobID }

// SchemaVersion returns the stored schema version of the record.
func (r ResourceRecord) SchemaVersion() int { return r.schemaVersion }

// HasBlob reports whether the record references a physical blob.
func (r ResourceRecord) HasBlob() bool { return r.blobID != "" }

// Matches reports whether query occurs as a case-insensitive substring of
// the title, the subject, or any tag.
func (r ResourceRecord) Matches(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.subject), q) {
		return true
	}
	for _, tag := range r.tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// NormalizeBlobRef maps empty and legacy sentinel references to "".
func NormalizeBlobRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.EqualFold(ref, NoBlobSentinel) {
		return ""
	}
	return ref
}

func cloneTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	c := make([]string, len(tags))
	copy(c, tags)
	return c
}
