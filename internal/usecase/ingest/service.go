// Package ingest orchestrates the upload pipeline: store blob, extract
// text, derive tags, write the catalog record.
package ingest

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"go.uber.org/zap"

	"github.com/lectern-io/lectern/internal/domain"
	"github.com/lectern-io/lectern/internal/metrics"
)

// DefaultUploader is recorded when a request carries no uploader id.
const DefaultUploader = "anonymous_student"

// Input describes one upload.
type Input struct {
	Subject     string
	Content     []byte
	Filename    string
	ContentType string
	UploaderID  string
}

// Result summarizes a completed ingestion.
type Result struct {
	RecordID string
	BlobID   string
	Tags     []string
}

// Service runs the ingestion pipeline.
type Service struct {
	blobs           BlobWriter
	catalog         CatalogWriter
	extractor       TextExtractor
	keywords        KeywordExtractor
	keywordCount    int
	defaultUploader string
	logger          *zap.Logger
}

// New creates an ingestion service.
func New(
	blobs BlobWriter, catalog CatalogWriter,
	extractor TextExtractor, keywords KeywordExtractor,
	logger *zap.Logger,
) *Service {
	return &Service{
		blobs:           blobs,
		catalog:         catalog,
		extractor:       extractor,
		keywords:        keywords,
		keywordCount:    5,
		defaultUploader: DefaultUploader,
		logger:          logger,
	}
}

// WithKeywordCount overrides the number of derived tags per resource.
func (s *Service) WithKeywordCount(n int) *Service {
	if n > 0 {
		s.keywordCount = n
	}
	return s
}

// WithDefaultUploader overrides the uploader recorded for anonymous uploads.
func (s *Service) WithDefaultUploader(uploader string) *Service {
	if uploader != "" {
		s.defaultUploader = uploader
	}
	return s
}

// Ingest stores the payload, derives tags from its text, and writes the
// catalog record. Blob and catalog failures are fatal; extraction
// failures degrade to an empty tag list. A blob already written when the
// catalog insert fails stays in place as a logged orphan.
func (s *Service) Ingest(ctx context.Context, in Input) (Result, error) {
	blobID, err := s.blobs.Put(ctx, in.Content, in.Filename, in.ContentType)
	if err != nil {
		metrics.IngestFailuresTotal.WithLabelValues("blob").Inc()
		return Result{}, fmt.Errorf("store blob %q: %w", in.Filename, err)
	}

	text, err := s.extractor.Text(in.Content)
	if err != nil {
		s.logger.Warn("text extraction failed, continuing with empty text",
			zap.String("filename", in.Filename),
			zap.String("blob_id", blobID),
			zap.Error(err),
		)
		metrics.ExtractionFailuresTotal.Inc()
		text = ""
	}

	tags := s.keywords.ExtractN(text, s.keywordCount)

	uploader := in.UploaderID
	if uploader == "" {
		uploader = s.defaultUploader
	}

	rec, err := domain.NewResourceRecord(
		in.Filename, in.Subject, resourceType(in.ContentType), uploader, tags, blobID,
	)
	if err != nil {
		return Result{}, fmt.Errorf("build record for %q: %w", in.Filename, err)
	}

	recordID, err := s.catalog.Insert(ctx, rec)
	if err != nil {
		s.logger.Warn("catalog insert failed, blob left orphaned",
			zap.String("blob_id", blobID),
			zap.String("filename", in.Filename),
			zap.Error(err),
		)
		metrics.IngestFailuresTotal.WithLabelValues("catalog").Inc()
		metrics.OrphanedBlobsTotal.Inc()
		return Result{}, fmt.Errorf("insert record for %q: %w", in.Filename, err)
	}

	metrics.ResourcesIngestedTotal.Inc()
	metrics.BlobBytesWrittenTotal.Add(float64(len(in.Content)))

	return Result{RecordID: recordID, BlobID: blobID, Tags: tags}, nil
}

// resourceType maps a MIME content type to the catalog's resource type
// tag: "application/pdf" becomes "pdf".
func resourceType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil || mt == "" {
		return "pdf"
	}
	if idx := strings.LastIndex(mt, "/"); idx >= 0 {
		mt = mt[idx+1:]
	}
	if mt == "octet-stream" || mt == "" {
		return "pdf"
	}
	return mt
}
