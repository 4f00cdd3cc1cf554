package ports

import (
	"context"
	"io"
)

// FileUpload is a single inbound file as received from a multipart request.
type FileUpload struct {
	// Filename is the client-supplied original name; the extension of the
	// stored object is derived from its last dot-separated segment.
	Filename    string
	ContentType string
	Reader      io.Reader
}

// Uploader stores a cover image and returns a stable reference: a local
// path for the disk backend, a hosted URL for the object-store backend.
// The backend is chosen once at startup, never per request.
type Uploader interface {
	Store(ctx context.Context, upload *FileUpload) (string, error)
	// Remove deletes a previously stored cover. Used for best-effort
	// cleanup when post persistence fails after the upload succeeded.
	Remove(ctx context.Context, ref string) error
}
