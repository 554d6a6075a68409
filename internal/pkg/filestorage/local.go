package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/setnu/clubportal/internal/pkg/logger"
)

// LocalStorage keeps buckets as directories under basePath.
type LocalStorage struct {
	basePath string // The root directory where buckets live
	baseURL  string // The public URL prefix the uploads directory is served under
}

// NewLocalStorage creates a new LocalStorage instance and ensures basePath exists.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// BasePath returns the storage root, used for static serving.
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// Upload writes r to bucket/key. The file is created exclusively so an
// existing key is never overwritten.
func (ls *LocalStorage) Upload(ctx context.Context, bucket, key string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateBucket(bucket); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	dir := filepath.Join(ls.basePath, bucket)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create bucket directory")
		return fmt.Errorf("failed to create bucket directory: %w", err)
	}

	dstPath := filepath.Join(dir, key)
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("storage key %s/%s already exists: %w", bucket, key, err)
		}
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err = io.Copy(dst, r); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		return fmt.Errorf("failed to save file content: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to flush file content: %w", err)
	}

	logger.Debug().Str("bucket", bucket).Str("key", key).Msg("Blob stored")
	return nil
}

// PublicURL returns baseURL/bucket/key.
func (ls *LocalStorage) PublicURL(bucket, key string) string {
	return ls.baseURL + "/" + bucket + "/" + key
}

// Remove deletes keys from bucket. A key that does not exist counts as removed.
func (ls *LocalStorage) Remove(ctx context.Context, bucket string, keys ...string) error {
	if err := validateBucket(bucket); err != nil {
		return err
	}

	var errs []error
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := validateKey(key); err != nil {
			errs = append(errs, err)
			continue
		}

		physicalPath := filepath.Join(ls.basePath, bucket, key)
		if err := os.Remove(physicalPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn().Str("path", physicalPath).Msg("Blob to delete does not exist")
				continue
			}
			logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete blob")
			errs = append(errs, fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err))
			continue
		}
		logger.Info().Str("path", physicalPath).Msg("Blob deleted")
	}
	return errors.Join(errs...)
}
