package blob

import (
	"fmt"
	"strconv"
)

const (
	fieldFilename    = "filename"
	fieldContentType = "content_type"
	fieldSize        = "size"
	fieldChunks      = "chunks"
	fieldChunkSize   = "chunk_size"
)

type blobMeta struct {
	filename    string
	contentType string
	size        int64
	chunks      int
	chunkSize   int
}

// buildMetaFields flattens blob attributes into a hash field map.
func buildMetaFields(filename, contentType string, size int64, chunks, chunkSize int) map[string]string {
	return map[string]string{
		fieldFilename:    filename,
		fieldContentType: contentType,
		fieldSize:        strconv.FormatInt(size, 10),
		fieldChunks:      strconv.Itoa(chunks),
		fieldChunkSize:   strconv.Itoa(chunkSize),
	}
}

// parseMetaFields restores blob attributes from a hash field map.
func parseMetaFields(m map[string]string) (blobMeta, error) {
	size, err := strconv.ParseInt(m[fieldSize], 10, 64)
	if err != nil {
		return blobMeta{}, fmt.Errorf("bad size field %q", m[fieldSize])
	}
	chunks, err := strconv.Atoi(m[fieldChunks])
	if err != nil {
		return blobMeta{}, fmt.Errorf("bad chunks field %q", m[fieldChunks])
	}
	chunkSize, err := strconv.Atoi(m[fieldChunkSize])
	if err != nil {
		return blobMeta{}, fmt.Errorf("bad chunk_size field %q", m[fieldChunkSize])
	}
	return blobMeta{
		filename:    m[fieldFilename],
		contentType: m[fieldContentType],
		size:        size,
		chunks:      chunks,
		chunkSize:   chunkSize,
	}, nil
}
