package domain

// Blob is one stored binary payload together with its descriptive
// attributes. Content is always the full logical payload; internal
// chunking never surfaces here.
type Blob struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}
