package lectern

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/lectern-io/lectern/internal/domain"
	healthuc "github.com/lectern-io/lectern/internal/usecase/health"
	ingestuc "github.com/lectern-io/lectern/internal/usecase/ingest"
)

func TestNewRequiresAddress(t *testing.T) {
	_, err := New(context.Background())
	if err == nil {
		t.Fatal("expected error without database address")
	}
}

func TestClientIngest(t *testing.T) {
	var got ingestuc.Input
	ing := &mockIngestUseCase{
		ingestFn: func(_ context.Context, in ingestuc.Input) (ingestuc.Result, error) {
			got = in
			return ingestuc.Result{RecordID: "rec-1", BlobID: "blob-1", Tags: []string{"memory"}}, nil
		},
	}
	c := newTestClient(ing, nil, nil)

	res, err := c.Ingest(context.Background(), IngestInput{
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
		Subject:     "Operating Systems",
		UploaderID:  "u-1",
		Content:     []byte("%PDF-"),
	})
	if err != nil {
		t.Fatalf("Ingest() error = %v", err)
	}

	if got.Filename != "notes.pdf" || got.Subject != "Operating Systems" || got.UploaderID != "u-1" {
		t.Errorf("input not forwarded: %+v", got)
	}
	if !bytes.Equal(got.Content, []byte("%PDF-")) {
		t.Errorf("content not forwarded")
	}
	if res.RecordID != "rec-1" || res.BlobID != "blob-1" || len(res.Tags) != 1 {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestClientIngestError(t *testing.T) {
	ing := &mockIngestUseCase{
		ingestFn: func(_ context.Context, _ ingestuc.Input) (ingestuc.Result, error) {
			return ingestuc.Result{}, domain.ErrStorageUnavailable
		},
	}
	c := newTestClient(ing, nil, nil)

	_, err := c.Ingest(context.Background(), IngestInput{Filename: "x.pdf", Content: []byte("x")})
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestClientSearch(t *testing.T) {
	rec := domain.ReconstructResourceRecord(
		"01J", "OS Notes", "Operating Systems", "pdf", "u-1",
		[]string{"memory"}, "blob-1", domain.SchemaVersion,
	)
	var gotQuery string
	res := &mockResourceUseCase{
		searchFn: func(_ context.Context, q string) ([]domain.ResourceRecord, error) {
			gotQuery = q
			return []domain.ResourceRecord{rec}, nil
		},
	}
	c := newTestClient(nil, res, nil)

	out, err := c.Search(context.Background(), "memory")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if gotQuery != "memory" {
		t.Errorf("query = %q, want %q", gotQuery, "memory")
	}
	if len(out) != 1 || out[0].ID != "01J" || out[0].Title != "OS Notes" {
		t.Errorf("unexpected resources: %+v", out)
	}
}

func TestClientGetFile(t *testing.T) {
	res := &mockResourceUseCase{
		getFileFn: func(_ context.Context, id string) (domain.Blob, error) {
			if id != "rec-1" {
				t.Errorf("record id = %q, want rec-1", id)
			}
			return domain.Blob{
				ID:          "blob-1",
				Filename:    "notes.pdf",
				ContentType: "application/pdf",
				Size:        5,
				Content:     []byte("%PDF-"),
			}, nil
		},
	}
	c := newTestClient(nil, res, nil)

	f, err := c.GetFile(context.Background(), "rec-1")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if f.Filename != "notes.pdf" || f.ContentType != "application/pdf" || f.Size != 5 {
		t.Errorf("unexpected file: %+v", f)
	}
}

func TestClientGetFileNotFound(t *testing.T) {
	res := &mockResourceUseCase{
		getFileFn: func(_ context.Context, _ string) (domain.Blob, error) {
			return domain.Blob{}, domain.ErrBlobNotFound
		},
	}
	c := newTestClient(nil, res, nil)

	_, err := c.GetFile(context.Background(), "rec-1")
	if !errors.Is(err, ErrBlobNotFound) {
		t.Errorf("expected ErrBlobNotFound, got %v", err)
	}
}

func TestClientDelete(t *testing.T) {
	var deleted string
	res := &mockResourceUseCase{
		deleteFn: func(_ context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	c := newTestClient(nil, res, nil)

	if err := c.Delete(context.Background(), "rec-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted != "rec-1" {
		t.Errorf("deleted id = %q, want rec-1", deleted)
	}
}

func TestClientHealth(t *testing.T) {
	hc := &mockHealthUseCase{
		checkFn: func(_ context.Context) healthuc.Report {
			return healthuc.Report{
				Status: healthuc.Healthy,
				Checks: map[string]healthuc.CheckResult{"database": healthuc.CheckOK},
			}
		},
	}
	c := newTestClient(nil, nil, hc)

	h := c.Health(context.Background())
	if h.Status != "ok" || h.Checks["database"] != "ok" {
		t.Errorf("unexpected health: %+v", h)
	}
}

func TestOptionsApply(t *testing.T) {
	cfg := &clientConfig{}
	opts := []Option{
		WithRedis("localhost:6379", "secret"),
		WithUsername("svc"),
		WithChunkSize(1024),
		WithKeywordCount(3),
		WithDefaultUploader("u-default"),
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) != 1 || cfg.addrs[0] != "localhost:6379" {
		t.Errorf("addrs = %v", cfg.addrs)
	}
	if cfg.password != "secret" || cfg.username != "svc" {
		t.Errorf("credentials not applied")
	}
	if cfg.chunkSize != 1024 || cfg.keywordCount != 3 || cfg.defaultUploader != "u-default" {
		t.Errorf("tuning options not applied: %+v", cfg)
	}
}
