package lectern

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lectern-io/lectern/internal/db"
	dbRedis "github.com/lectern-io/lectern/internal/db/redis"
	"github.com/lectern-io/lectern/internal/domain"
	"github.com/lectern-io/lectern/internal/extract"
	"github.com/lectern-io/lectern/internal/keyword"
	blobrepo "github.com/lectern-io/lectern/internal/repository/blob"
	catalogrepo "github.com/lectern-io/lectern/internal/repository/catalog"
	healthuc "github.com/lectern-io/lectern/internal/usecase/health"
	ingestuc "github.com/lectern-io/lectern/internal/usecase/ingest"
	resourceuc "github.com/lectern-io/lectern/internal/usecase/resource"
)

const defaultReadinessTimeout = 10 * time.Second

// Internal interfaces so tests can substitute the services.
type ingestUseCase interface {
	Ingest(ctx context.Context, in ingestuc.Input) (ingestuc.Result, error)
}

type resourceUseCase interface {
	Get(ctx context.Context, id string) (domain.ResourceRecord, error)
	List(ctx context.Context) ([]domain.ResourceRecord, error)
	Search(ctx context.Context, query string) ([]domain.ResourceRecord, error)
	GetFile(ctx context.Context, recordID string) (domain.Blob, error)
	Delete(ctx context.Context, recordID string) error
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the lectern SDK entry point.
type Client struct {
	store       db.Store
	ingestSvc   ingestUseCase
	resourceSvc resourceUseCase
	healthSvc   healthUseCase
	obs         *observer
}

// New creates a lectern Client and connects to the database.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("lectern: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("lectern: create redis store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("lectern: database not ready: %w", err)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		store.Close()
		return nil, err
	}
	return wireClient(store, cfg, obs), nil
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	ids := domain.NewIDSource()

	blobs := blobrepo.New(store, ids)
	if cfg.chunkSize > 0 {
		blobs = blobs.WithChunkSize(cfg.chunkSize)
	}
	catalog := catalogrepo.New(store, ids)

	ingestSvc := ingestuc.New(blobs, catalog, extract.NewPDF(), keyword.NewDefault(), obs.logger)
	if cfg.keywordCount > 0 {
		ingestSvc = ingestSvc.WithKeywordCount(cfg.keywordCount)
	}
	if cfg.defaultUploader != "" {
		ingestSvc = ingestSvc.WithDefaultUploader(cfg.defaultUploader)
	}

	return &Client{
		store:       store,
		ingestSvc:   ingestSvc,
		resourceSvc: resourceuc.New(catalog, blobs, obs.logger),
		healthSvc:   healthuc.New(store),
		obs:         obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Ingest stores the document bytes, derives tags from the extracted
// text and inserts a catalog record.
func (c *Client) Ingest(ctx context.Context, in IngestInput) (res IngestResult, err error) {
	start := time.Now()
	defer func() { c.obs.observe("ingest", start, err) }()

	out, err := c.ingestSvc.Ingest(ctx, ingestuc.Input{
		Filename:    in.Filename,
		ContentType: in.ContentType,
		Subject:     in.Subject,
		UploaderID:  in.UploaderID,
		Content:     in.Content,
	})
	if err != nil {
		return IngestResult{}, err
	}
	return IngestResult{RecordID: out.RecordID, BlobID: out.BlobID, Tags: out.Tags}, nil
}

// Get returns a single resource by id.
func (c *Client) Get(ctx context.Context, id string) (res Resource, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get", start, err) }()

	rec, err := c.resourceSvc.Get(ctx, id)
	if err != nil {
		return Resource{}, err
	}
	return resourceFromDomain(rec), nil
}

// List returns all resources, newest first.
func (c *Client) List(ctx context.Context) (res []Resource, err error) {
	start := time.Now()
	defer func() { c.obs.observe("list", start, err) }()

	recs, err := c.resourceSvc.List(ctx)
	if err != nil {
		return nil, err
	}
	return resourcesFromDomain(recs), nil
}

// Search returns resources whose title, subject or tags contain the
// query, case-insensitively. A blank query lists everything.
func (c *Client) Search(ctx context.Context, query string) (res []Resource, err error) {
	start := time.Now()
	defer func() { c.obs.observe("search", start, err) }()

	recs, err := c.resourceSvc.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return resourcesFromDomain(recs), nil
}

// GetFile returns the stored content of a resource.
func (c *Client) GetFile(ctx context.Context, recordID string) (f File, err error) {
	start := time.Now()
	defer func() { c.obs.observe("get_file", start, err) }()

	blob, err := c.resourceSvc.GetFile(ctx, recordID)
	if err != nil {
		return File{}, err
	}
	return File{
		Filename:    blob.Filename,
		ContentType: blob.ContentType,
		Size:        blob.Size,
		Content:     blob.Content,
	}, nil
}

// Delete removes a resource record and its stored content.
func (c *Client) Delete(ctx context.Context, recordID string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("delete", start, err) }()

	return c.resourceSvc.Delete(ctx, recordID)
}

// Health checks the health of all system components.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{Status: string(report.Status), Checks: checks}
}
