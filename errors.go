package lectern

import "github.com/lectern-io/lectern/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrRecordNotFound     = domain.ErrRecordNotFound
	ErrBlobNotFound       = domain.ErrBlobNotFound
	ErrBlobCorrupted      = domain.ErrBlobCorrupted
	ErrInvalidDocument    = domain.ErrInvalidDocument
	ErrStorageUnavailable = domain.ErrStorageUnavailable
	ErrCatalogUnavailable = domain.ErrCatalogUnavailable
	ErrCatalogWriteFailed = domain.ErrCatalogWriteFailed
)
