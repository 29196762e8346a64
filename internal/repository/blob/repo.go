// Package blob stores binary payloads in the database, chunked so a
// single logical object never hits per-value size limits.
package blob

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/lectern-io/lectern/internal/db"
	"github.com/lectern-io/lectern/internal/domain"
)

// DefaultChunkSize is the payload chunk size in bytes.
const DefaultChunkSize = 256 * 1024

// store is the consumer interface for blob persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo implements blob storage over the KV and hash stores.
type Repo struct {
	store     store
	ids       *domain.IDSource
	chunkSize int
}

// New creates a blob repository.
func New(s store, ids *domain.IDSource) *Repo {
	return &Repo{store: s, ids: ids, chunkSize: DefaultChunkSize}
}

// WithChunkSize overrides the chunk size.
func (r *Repo) WithChunkSize(size int) *Repo {
	if size > 0 {
		r.chunkSize = size
	}
	return r
}

// Put stores content under a fresh blob id and returns it. Chunks are
// written first; the meta hash goes last and marks the blob committed.
func (r *Repo) Put(ctx context.Context, content []byte, filename, contentType string) (string, error) {
	id := r.ids.NewID()

	chunks := 0
	for off := 0; off < len(content); off += r.chunkSize {
		end := off + r.chunkSize
		if end > len(content) {
			end = len(content)
		}
		if err := r.store.Set(ctx, chunkKey(id, chunks), content[off:end]); err != nil {
			return "", fmt.Errorf("write chunk %d of blob %s: %w: %w", chunks, id, err, domain.ErrStorageUnavailable)
		}
		chunks++
	}

	meta := buildMetaFields(filename, contentType, int64(len(content)), chunks, r.chunkSize)
	if err := r.store.HSet(ctx, metaKey(id), meta); err != nil {
		return "", fmt.Errorf("write meta of blob %s: %w: %w", id, err, domain.ErrStorageUnavailable)
	}

	return id, nil
}

// Get reassembles a blob. A missing meta hash means the blob does not
// exist; a missing chunk under an existing meta means corruption.
func (r *Repo) Get(ctx context.Context, id string) (domain.Blob, error) {
	fields, err := r.store.HGetAll(ctx, metaKey(id))
	if err != nil {
		return domain.Blob{}, fmt.Errorf("read meta of blob %s: %w: %w", id, err, domain.ErrStorageUnavailable)
	}
	if len(fields) == 0 {
		return domain.Blob{}, fmt.Errorf("blob %s: %w", id, domain.ErrBlobNotFound)
	}

	meta, err := parseMetaFields(fields)
	if err != nil {
		return domain.Blob{}, fmt.Errorf("blob %s: %w: %w", id, err, domain.ErrBlobCorrupted)
	}

	content := make([]byte, 0, meta.size)
	for i := 0; i < meta.chunks; i++ {
		chunk, err := r.store.Get(ctx, chunkKey(id, i))
		if err != nil {
			if errors.Is(err, db.ErrKeyNotFound) {
				return domain.Blob{}, fmt.Errorf("blob %s missing chunk %d: %w", id, i, domain.ErrBlobCorrupted)
			}
			return domain.Blob{}, fmt.Errorf("read chunk %d of blob %s: %w: %w", i, id, err, domain.ErrStorageUnavailable)
		}
		content = append(content, chunk...)
	}
	if int64(len(content)) != meta.size {
		return domain.Blob{}, fmt.Errorf(
			"blob %s size mismatch: got %d, want %d: %w", id, len(content), meta.size, domain.ErrBlobCorrupted,
		)
	}

	return domain.Blob{
		ID:          id,
		Filename:    meta.filename,
		ContentType: meta.contentType,
		Size:        meta.size,
		Content:     content,
	}, nil
}

// Delete removes a blob's chunks and meta hash.
func (r *Repo) Delete(ctx context.Context, id string) error {
	fields, err := r.store.HGetAll(ctx, metaKey(id))
	if err != nil {
		return fmt.Errorf("read meta of blob %s: %w: %w", id, err, domain.ErrStorageUnavailable)
	}
	if len(fields) == 0 {
		return fmt.Errorf("blob %s: %w", id, domain.ErrBlobNotFound)
	}

	meta, err := parseMetaFields(fields)
	if err != nil {
		return fmt.Errorf("blob %s: %w: %w", id, err, domain.ErrBlobCorrupted)
	}

	for i := 0; i < meta.chunks; i++ {
		if err := r.store.Del(ctx, chunkKey(id, i)); err != nil {
			return fmt.Errorf("delete chunk %d of blob %s: %w: %w", i, id, err, domain.ErrStorageUnavailable)
		}
	}
	if err := r.store.Del(ctx, metaKey(id)); err != nil {
		return fmt.Errorf("delete meta of blob %s: %w: %w", id, err, domain.ErrStorageUnavailable)
	}
	return nil
}

func metaKey(id string) string {
	return domain.KeyPrefix + "blob:" + id
}

func chunkKey(id string, n int) string {
	return metaKey(id) + ":c:" + strconv.Itoa(n)
}
