package documents

import "time"

// Document is an upload staged in the object store for the duration of one request.
type Document struct {
	ID         string
	Owner      string
	FileName   string
	MimeType   string
	SizeBytes  int64
	StorageKey string
	CreatedAt  time.Time
}
