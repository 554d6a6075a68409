package filestorage

import (
	"context"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Buckets used by the portal.
const (
	BucketFiles   = "files"
	BucketGallery = "gallery"
)

// BlobStore is a bucketed binary object store.
type BlobStore interface {
	// Upload stores r under bucket/key. It never overwrites an existing key.
	Upload(ctx context.Context, bucket, key string, r io.Reader) error

	// PublicURL resolves the address a browser can fetch bucket/key from.
	PublicURL(bucket, key string) string

	// Remove deletes keys from bucket. Missing keys are not an error.
	Remove(ctx context.Context, bucket string, keys ...string) error
}

// Blob is a binary payload with its original filename.
type Blob struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// BlobFromFileHeader opens a multipart upload. The caller closes the returned file.
func BlobFromFileHeader(fh *multipart.FileHeader) (Blob, io.Closer, error) {
	f, err := fh.Open()
	if err != nil {
		return Blob{}, nil, err
	}
	return Blob{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, f, nil
}

// NewStorageKey builds a storage key from the upload time and the original
// file extension. A short random suffix keeps keys distinct when two uploads
// land in the same millisecond.
func NewStorageKey(now time.Time, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return strconvMillis(now) + "-" + suffix + ext
}

// KeyFromURL extracts the storage key (last path segment) from a public URL.
func KeyFromURL(publicURL string) string {
	if publicURL == "" {
		return ""
	}
	trimmed := publicURL
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	key := path.Base(trimmed)
	if key == "." || key == "/" {
		return ""
	}
	return key
}
