package manage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/forms"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/pkg/filestorage"
	"github.com/setnu/clubportal/internal/pkg/notify"
)

// UploadClient is a Client whose records are created by uploading a blob.
type UploadClient[T any] interface {
	Client[T]
	Upload(ctx context.Context, session auth.Session, blob filestorage.Blob, title, description string) (*T, error)
}

// UploadScreen manages an upload-backed entity. Edits touch metadata only;
// Delete removes the blob along with the row through the client.
type UploadScreen[T models.Keyed] struct {
	*Screen[T, forms.Upload]
	uploads UploadClient[T]
}

// NewUploadScreen creates an UploadScreen.
func NewUploadScreen[T models.Keyed](cfg Config, client UploadClient[T], codec forms.Codec[T, forms.Upload], session auth.Session, n notify.Notifier, logger zerolog.Logger) *UploadScreen[T] {
	return &UploadScreen[T]{
		Screen:  NewScreen[T, forms.Upload](cfg, client, codec, session, n, logger),
		uploads: client,
	}
}

// Upload stores blob with the given metadata and reloads the list. The
// form is left as it was.
func (s *UploadScreen[T]) Upload(ctx context.Context, blob filestorage.Blob, title, description string) (*T, error) {
	rec, err := s.uploads.Upload(ctx, s.session, blob, title, description)
	if err != nil {
		s.fail(fmt.Sprintf("Failed to upload %s", s.labelLower()), err)
		return nil, err
	}
	s.succeed(fmt.Sprintf("%s uploaded successfully", s.label))
	_ = s.Load(ctx)
	return rec, nil
}
