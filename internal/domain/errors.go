package domain

import "errors"

var (
	// ErrRecordNotFound signals a missing catalog record.
	ErrRecordNotFound = errors.New("record not found")
	// ErrBlobNotFound signals a missing blob.
	ErrBlobNotFound = errors.New("blob not found")
	// ErrBlobCorrupted signals a blob whose stored chunks cannot be reassembled.
	ErrBlobCorrupted = errors.New("blob corrupted")
	// ErrInvalidDocument signals a payload that cannot be parsed as a document container.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrStorageUnavailable signals that the blob store cannot be reached.
	ErrStorageUnavailable = errors.New("blob storage unavailable")
	// ErrCatalogUnavailable signals that the catalog cannot be reached.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrCatalogWriteFailed signals a catalog insert or delete rejected by the store.
	ErrCatalogWriteFailed = errors.New("catalog write failed")
)
