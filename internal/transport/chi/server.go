// Package chi exposes the engine over the fixed HTTP contract: upload,
// list/search, inline file fetch, and delete.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lectern-io/lectern/internal/domain"
	healthuc "github.com/lectern-io/lectern/internal/usecase/health"
	ingestuc "github.com/lectern-io/lectern/internal/usecase/ingest"
	resourceuc "github.com/lectern-io/lectern/internal/usecase/resource"
)

// DefaultMaxUploadBytes bounds multipart uploads when no limit is configured.
const DefaultMaxUploadBytes = 64 << 20

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server wires the usecase services to HTTP handlers.
type Server struct {
	ingest         *ingestuc.Service
	resources      *resourceuc.Service
	health         *healthuc.Service
	logger         *zap.Logger
	maxUploadBytes int64
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	ingest *ingestuc.Service,
	resources *resourceuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		ingest:         ingest,
		resources:      resources,
		health:         health,
		logger:         logger,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrRecordNotFound, http.StatusNotFound, codeRecordNotFound),
		sentinelHandler(domain.ErrBlobNotFound, http.StatusNotFound, codeFileNotFound),
		sentinelHandler(domain.ErrBlobCorrupted, http.StatusInternalServerError, codeFileCorrupted),
		sentinelHandler(domain.ErrInvalidDocument, http.StatusBadRequest, codeInvalidDocument),
		sentinelHandler(domain.ErrStorageUnavailable, http.StatusServiceUnavailable, codeStorageUnavailable),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, codeCatalogUnavailable),
		sentinelHandler(domain.ErrCatalogWriteFailed, http.StatusInternalServerError, codeCatalogWriteFailed),
	}
	return s
}

// WithMaxUploadBytes overrides the multipart upload size limit.
func (s *Server) WithMaxUploadBytes(n int64) *Server {
	if n > 0 {
		s.maxUploadBytes = n
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/resources", s.UploadResource)
		r.Get("/resources", s.ListResources)
		r.Delete("/resources/{id}", s.DeleteResource)
		r.Get("/search", s.SearchResources)
		r.Get("/files/{id}", s.GetFile)
	})
	r.Get("/healthz", s.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// UploadResource handles POST /api/resources (multipart: subject + file).
func (s *Server) UploadResource(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Missing or unreadable file part: "+err.Error())
		return
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Could not read upload: "+err.Error())
		return
	}

	result, err := s.ingest.Ingest(r.Context(), ingestuc.Input{
		Subject:     r.FormValue("subject"),
		Content:     content,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		UploaderID:  r.FormValue("uploader_id"),
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		Message: "Resource successfully analyzed and uploaded.",
		ID:      result.RecordID,
		BlobID:  result.BlobID,
		Tags:    tagsOrEmpty(result.Tags),
	})
}

// ListResources handles GET /api/resources.
func (s *Server) ListResources(w http.ResponseWriter, r *http.Request) {
	recs, err := s.resources.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsToJSON(recs))
}

// SearchResources handles GET /api/search?q=.
func (s *Server) SearchResources(w http.ResponseWriter, r *http.Request) {
	recs, err := s.resources.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recordsToJSON(recs))
}

// GetFile handles GET /api/files/{id}: the record id resolves to its
// blob, returned inline for browser display.
func (s *Server) GetFile(w http.ResponseWriter, r *http.Request) {
	blob, err := s.resources.GetFile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	contentType := blob.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(blob.Size, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", blob.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(blob.Content)
}

// DeleteResource handles DELETE /api/resources/{id}.
func (s *Server) DeleteResource(w http.ResponseWriter, r *http.Request) {
	if err := s.resources.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Resource successfully deleted"})
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, healthToJSON(report))
}

// handleDomainError maps a domain error to an HTTP response.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// sentinelHandler builds an errorHandler for one sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
