// Package catalog persists resource records as database hashes, one per
// record, keyed by ULID.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lectern-io/lectern/internal/domain"
)

// store is the consumer interface for catalog persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Repo implements the resource catalog.
type Repo struct {
	store store
	ids   *domain.IDSource
}

// New creates a catalog repository.
func New(s store, ids *domain.IDSource) *Repo {
	return &Repo{store: s, ids: ids}
}

// Insert writes a record under a fresh identifier and returns it.
func (r *Repo) Insert(ctx context.Context, rec domain.ResourceRecord) (string, error) {
	id := r.ids.NewID()
	if err := r.store.HSet(ctx, recordKey(id), buildHashFields(rec)); err != nil {
		return "", fmt.Errorf("hset record %s: %w: %w", id, err, domain.ErrCatalogWriteFailed)
	}
	return id, nil
}

// Get returns a record by id.
func (r *Repo) Get(ctx context.Context, id string) (domain.ResourceRecord, error) {
	fields, err := r.store.HGetAll(ctx, recordKey(id))
	if err != nil {
		return domain.ResourceRecord{}, fmt.Errorf("hgetall record %s: %w: %w", id, err, domain.ErrCatalogUnavailable)
	}
	if len(fields) == 0 {
		return domain.ResourceRecord{}, fmt.Errorf("record %s: %w", id, domain.ErrRecordNotFound)
	}
	return parseHashFields(id, fields), nil
}

// List returns every record, newest first. ULIDs sort chronologically,
// so newest-first is a descending sort over the identifier strings.
func (r *Repo) List(ctx context.Context) ([]domain.ResourceRecord, error) {
	keys, err := r.store.Scan(ctx, recordKeyPrefix()+"*")
	if err != nil {
		return nil, fmt.Errorf("scan records: %w: %w", err, domain.ErrCatalogUnavailable)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	maps, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load records: %w: %w", err, domain.ErrCatalogUnavailable)
	}

	records := make([]domain.ResourceRecord, 0, len(maps))
	for i, fields := range maps {
		if len(fields) == 0 {
			// Deleted between SCAN and HGETALL.
			continue
		}
		records = append(records, parseHashFields(recordID(keys[i]), fields))
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID() > records[j].ID()
	})
	return records, nil
}

// Delete removes a record by id.
func (r *Repo) Delete(ctx context.Context, id string) error {
	exists, err := r.store.Exists(ctx, recordKey(id))
	if err != nil {
		return fmt.Errorf("check record %s: %w: %w", id, err, domain.ErrCatalogUnavailable)
	}
	if !exists {
		return fmt.Errorf("record %s: %w", id, domain.ErrRecordNotFound)
	}
	if err := r.store.Del(ctx, recordKey(id)); err != nil {
		return fmt.Errorf("del record %s: %w: %w", id, err, domain.ErrCatalogWriteFailed)
	}
	return nil
}

func recordKeyPrefix() string {
	return domain.KeyPrefix + "resource:"
}

func recordKey(id string) string {
	return recordKeyPrefix() + id
}

func recordID(key string) string {
	return strings.TrimPrefix(key, recordKeyPrefix())
}
