package chi

import (
	"github.com/lectern-io/lectern/internal/domain"
	healthuc "github.com/lectern-io/lectern/internal/usecase/health"
)

// Error codes surfaced in JSON error responses.
const (
	codeBadRequest         = "bad_request"
	codeRecordNotFound     = "record_not_found"
	codeFileNotFound       = "file_not_found"
	codeFileCorrupted      = "file_corrupted"
	codeInvalidDocument    = "invalid_document"
	codeStorageUnavailable = "storage_unavailable"
	codeCatalogUnavailable = "catalog_unavailable"
	codeCatalogWriteFailed = "catalog_write_failed"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type uploadResponse struct {
	Message string   `json:"message"`
	ID      string   `json:"id"`
	BlobID  string   `json:"blob_id"`
	Tags    []string `json:"tags"`
}

type recordResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Subject    string   `json:"subject"`
	Type       string   `json:"type"`
	UploaderID string   `json:"uploader_id"`
	Tags       []string `json:"tags"`
	BlobID     string   `json:"blob_id,omitempty"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func recordToJSON(rec domain.ResourceRecord) recordResponse {
	return recordResponse{
		ID:         rec.ID(),
		Title:      rec.Title(),
		Subject:    rec.Subject(),
		Type:       rec.ResourceType(),
		UploaderID: rec.UploaderID(),
		Tags:       tagsOrEmpty(rec.Tags()),
		BlobID:     rec.BlobID(),
	}
}

func recordsToJSON(recs []domain.ResourceRecord) []recordResponse {
	out := make([]recordResponse, len(recs))
	for i, rec := range recs {
		out[i] = recordToJSON(rec)
	}
	return out
}

func healthToJSON(report healthuc.Report) healthResponse {
	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}
	return healthResponse{Status: string(report.Status), Checks: checks}
}

// tagsOrEmpty keeps JSON arrays non-null for empty tag sets.
func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
