package catalog

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/lectern-io/lectern/internal/domain"
)

const (
	fieldVersion    = "v"
	fieldTitle      = "title"
	fieldSubject    = "subject"
	fieldType       = "type"
	fieldUploaderID = "uploader_id"
	fieldTags       = "tags"
	fieldBlobID     = "blob_id"

	// legacyFieldBlobID is the blob reference field name written by
	// schema v1; read-only here.
	legacyFieldBlobID = "file_id"
)

// buildHashFields flattens a record into a hash field map. Tags are JSON
// so their extraction rank survives the round trip.
func buildHashFields(rec domain.ResourceRecord) map[string]string {
	tags, _ := json.Marshal(rec.Tags())
	return map[string]string{
		fieldVersion:    strconv.Itoa(domain.SchemaVersion),
		fieldTitle:      rec.Title(),
		fieldSubject:    rec.Subject(),
		fieldType:       rec.ResourceType(),
		fieldUploaderID: rec.UploaderID(),
		fieldTags:       string(tags),
		fieldBlobID:     rec.BlobID(),
	}
}

// parseHashFields restores a record, normalizing legacy v1 shapes: the
// blob reference may live under file_id, and tags may be a plain
// comma-separated list instead of JSON.
func parseHashFields(id string, m map[string]string) domain.ResourceRecord {
	version, err := strconv.Atoi(m[fieldVersion])
	if err != nil || version < 1 {
		version = 1
	}

	blobID := m[fieldBlobID]
	if blobID == "" {
		blobID = m[legacyFieldBlobID]
	}

	return domain.ReconstructResourceRecord(
		id,
		m[fieldTitle],
		m[fieldSubject],
		m[fieldType],
		m[fieldUploaderID],
		parseTags(m[fieldTags]),
		blobID,
		version,
	)
}

func parseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err == nil {
		return tags
	}
	var out []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
