package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/repositories"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/filestorage"
	"github.com/setnu/clubportal/internal/pkg/helpers"
)

// UploadMeta is what the uploader supplies alongside the blob.
type UploadMeta struct {
	Title       string
	Description *string
	ContentType *string
	URL         string
	UploadedBy  *uuid.UUID
}

// UploadBinding ties an upload-backed entity to its bucket.
type UploadBinding[T any] struct {
	Entity string
	Bucket string
	// NewRecord builds the metadata row for a stored blob.
	NewRecord func(meta UploadMeta) T
	// BlobURL returns the public URL a record points at.
	BlobURL func(rec T) string
}

// ResourceBinding stores resources in the files bucket.
var ResourceBinding = UploadBinding[models.Resource]{
	Entity: models.EntityResource,
	Bucket: filestorage.BucketFiles,
	NewRecord: func(m UploadMeta) models.Resource {
		return models.Resource{
			Title:       m.Title,
			Description: m.Description,
			FileType:    m.ContentType,
			FileURL:     m.URL,
			UploadedBy:  m.UploadedBy,
		}
	},
	BlobURL: func(r models.Resource) string { return r.FileURL },
}

// GalleryBinding stores images in the gallery bucket.
var GalleryBinding = UploadBinding[models.GalleryImage]{
	Entity: models.EntityGallery,
	Bucket: filestorage.BucketGallery,
	NewRecord: func(m UploadMeta) models.GalleryImage {
		return models.GalleryImage{
			Title:       m.Title,
			Description: m.Description,
			ImageURL:    m.URL,
			UploadedBy:  m.UploadedBy,
		}
	},
	BlobURL: func(g models.GalleryImage) string { return g.ImageURL },
}

// UploadService manages records whose payload lives in the blob store.
// A create stores the blob first and then inserts the row; if the insert
// fails the blob is removed again.
type UploadService[T models.Keyed] struct {
	*ContentService[T]
	blobs   filestorage.BlobStore
	binding UploadBinding[T]
	now     func() time.Time
	logger  zerolog.Logger
}

// NewUploadService creates an UploadService
func NewUploadService[T models.Keyed](table repositories.Table[T], blobs filestorage.BlobStore, binding UploadBinding[T], logger zerolog.Logger) *UploadService[T] {
	return &UploadService[T]{
		ContentService: NewContentService(binding.Entity, table, logger),
		blobs:          blobs,
		binding:        binding,
		now:            time.Now,
		logger:         logger.With().Str("entity", binding.Entity).Str("bucket", binding.Bucket).Logger(),
	}
}

// Create is not available for upload-backed records; use Upload.
func (s *UploadService[T]) Create(ctx context.Context, rec *T) error {
	return apperrors.NewWriteError(s.binding.Entity, apperrors.OpCreate, "", apperrors.ErrUploadRequired)
}

// Upload stores blob under a fresh key and inserts its metadata row.
func (s *UploadService[T]) Upload(ctx context.Context, session auth.Session, blob filestorage.Blob, title, description string) (*T, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}
	if blob.Body == nil || blob.Size == 0 {
		return nil, apperrors.ErrEmptyUpload
	}

	key := filestorage.NewStorageKey(s.now(), blob.Filename)
	log := s.logger.With().Str("key", key).Logger()

	if err := s.blobs.Upload(ctx, s.binding.Bucket, key, blob.Body); err != nil {
		log.Error().Err(err).Msg("Failed to store blob")
		return nil, &apperrors.UploadError{Entity: s.binding.Entity, Bucket: s.binding.Bucket, Key: key, Phase: apperrors.PhaseStore, Err: err}
	}

	rec := s.binding.NewRecord(UploadMeta{
		Title:       title,
		Description: helpers.NullIfEmpty(description),
		ContentType: helpers.NullIfEmpty(blob.ContentType),
		URL:         s.blobs.PublicURL(s.binding.Bucket, key),
		UploadedBy:  session.ActorID(),
	})

	if err := s.ContentService.table.Create(ctx, &rec); err != nil {
		uploadErr := &apperrors.UploadError{Entity: s.binding.Entity, Bucket: s.binding.Bucket, Key: key, Phase: apperrors.PhaseInsert, Err: err}
		// The request context may already be cancelled; the cleanup must still run.
		if rmErr := s.blobs.Remove(context.WithoutCancel(ctx), s.binding.Bucket, key); rmErr != nil {
			uploadErr.Orphaned = true
			log.Error().Err(rmErr).AnErr("insertErr", err).Msg("Failed to remove blob after insert failure, blob orphaned")
		} else {
			log.Warn().Err(err).Msg("Metadata insert failed, stored blob removed")
		}
		return nil, uploadErr
	}

	log.Info().Str("id", rec.Key().String()).Msg("Upload stored")
	return &rec, nil
}

// Delete removes the row and then its blob. A blob that cannot be removed
// is logged as orphaned; the delete still succeeds.
func (s *UploadService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := s.ContentService.table.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("id", id.String()).Msg("Failed to load record for delete")
		return apperrors.NewWriteError(s.binding.Entity, apperrors.OpDelete, id.String(), err)
	}

	if err := s.ContentService.Delete(ctx, id); err != nil {
		return err
	}

	key := filestorage.KeyFromURL(s.binding.BlobURL(*rec))
	if key == "" {
		s.logger.Warn().Str("id", id.String()).Msg("Deleted record had no blob URL")
		return nil
	}
	if err := s.blobs.Remove(context.WithoutCancel(ctx), s.binding.Bucket, key); err != nil {
		s.logger.Error().Err(err).Str("id", id.String()).Str("key", key).Msg("Failed to remove blob, blob orphaned")
	}
	return nil
}
