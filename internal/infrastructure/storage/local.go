package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/blogpress/blog-backend/internal/api/metrics"
	"github.com/blogpress/blog-backend/internal/core/domain"
	"github.com/blogpress/blog-backend/internal/core/ports"
)

// LocalStore writes cover images to a directory on disk. Files are stored
// under a generated name carrying the extension of the original filename,
// since the inbound stream itself has no name of its own.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates the upload directory if needed. urlPrefix is the
// public path under which the directory is served statically.
func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (l *LocalStore) Store(ctx context.Context, upload *ports.FileUpload) (string, error) {
	if upload == nil || upload.Reader == nil {
		return "", domain.ErrCoverRequired
	}

	name := uuid.NewString()
	if ext := fileExt(upload.Filename); ext != "" {
		name += "." + ext
	}

	dst, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("local", "error").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, upload.Reader); err != nil {
		_ = os.Remove(dst.Name())
		metrics.UploadsTotal.WithLabelValues("local", "error").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrUpload, err)
	}

	metrics.UploadsTotal.WithLabelValues("local", "ok").Inc()
	return l.urlPrefix + "/" + name, nil
}

// Remove deletes a stored cover by its public reference. References
// outside the store's prefix are ignored.
func (l *LocalStore) Remove(ctx context.Context, ref string) error {
	if !strings.HasPrefix(ref, l.urlPrefix+"/") {
		return nil
	}
	name := filepath.Base(ref)
	if err := os.Remove(filepath.Join(l.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// fileExt returns the last dot-separated segment of name, or "" when the
// name carries no extension at all.
func fileExt(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}
