package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/setnu/clubportal/internal/app/auth"
	"github.com/setnu/clubportal/internal/app/models"
	"github.com/setnu/clubportal/internal/app/repositories"
	"github.com/setnu/clubportal/internal/pkg/apperrors"
	"github.com/setnu/clubportal/internal/pkg/filestorage"
	"github.com/setnu/clubportal/internal/pkg/memstore"
)

// fakeBlobs is an in-memory BlobStore whose calls can be made to fail.
type fakeBlobs struct {
	mu         sync.Mutex
	objects    map[string][]byte
	uploadErr  error
	removeErr  error
	removeKeys []string
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (f *fakeBlobs) Upload(ctx context.Context, bucket, key string, r io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.uploadErr != nil {
		return f.uploadErr
	}
	if _, exists := f.objects[bucket+"/"+key]; exists {
		return errors.New("key exists")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.objects[bucket+"/"+key] = data
	return nil
}

func (f *fakeBlobs) PublicURL(bucket, key string) string {
	return "http://cdn.test/uploads/" + bucket + "/" + key
}

func (f *fakeBlobs) Remove(ctx context.Context, bucket string, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeKeys = append(f.removeKeys, keys...)
	if f.removeErr != nil {
		return f.removeErr
	}
	for _, k := range keys {
		delete(f.objects, bucket+"/"+k)
	}
	return nil
}

func (f *fakeBlobs) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

func pdf(name string) filestorage.Blob {
	body := "%PDF-1.7 test"
	return filestorage.Blob{Filename: name, ContentType: "application/pdf", Size: int64(len(body)), Body: strings.NewReader(body)}
}

var admin = auth.NewSession(uuid.New(), "admin@club.edu", &models.Profile{Role: models.RoleFaculty})

func TestUploadSameFilenameTwiceGetsDistinctKeys(t *testing.T) {
	ctx := context.Background()
	blobs := newFakeBlobs()
	svc := NewUploadService(repositories.NewMemoryRepositories().Resources, blobs, ResourceBinding, zerolog.Nop())

	clock := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	first, err := svc.Upload(ctx, admin, pdf("report.pdf"), "Report", "")
	if err != nil {
		t.Fatalf("first upload: %v", err)
	}
	// same millisecond, same title
	second, err := svc.Upload(ctx, admin, pdf("report.pdf"), "Report", "")
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}

	if first.FileURL == second.FileURL {
		t.Fatalf("uploads share a storage key: %s", first.FileURL)
	}
	if blobs.count() != 2 {
		t.Errorf("stored blobs = %d, want 2", blobs.count())
	}
	if first.FileType == nil || *first.FileType != "application/pdf" {
		t.Errorf("file type = %v, want the blob's MIME type", first.FileType)
	}
	if first.UploadedBy == nil || *first.UploadedBy != admin.UserID {
		t.Errorf("uploaded_by = %v", first.UploadedBy)
	}

	list, err := svc.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("List() = %d items, %v", len(list), err)
	}
}

func TestUploadInsertFailureRemovesBlob(t *testing.T) {
	ctx := context.Background()
	blobs := newFakeBlobs()
	table := memstore.NewTable[models.Resource](models.ResourceLess)
	svc := NewUploadService[models.Resource](table, blobs, ResourceBinding, zerolog.Nop())

	table.FailNext(errors.New("insert rejected"))
	_, err := svc.Upload(ctx, admin, pdf("notes.pdf"), "Notes", "")

	var uploadErr *apperrors.UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("error = %v, want UploadError", err)
	}
	if uploadErr.Phase != apperrors.PhaseInsert || uploadErr.Orphaned {
		t.Errorf("UploadError = %+v, want insert phase without orphan", uploadErr)
	}
	if blobs.count() != 0 {
		t.Errorf("blob left behind after failed insert")
	}
	if len(blobs.removeKeys) != 1 || blobs.removeKeys[0] != uploadErr.Key {
		t.Errorf("removed keys = %v, want [%s]", blobs.removeKeys, uploadErr.Key)
	}
}

func TestUploadReportsOrphanWhenCleanupFails(t *testing.T) {
	ctx := context.Background()
	blobs := newFakeBlobs()
	blobs.removeErr = errors.New("storage offline")
	table := memstore.NewTable[models.GalleryImage](models.GalleryLess)
	svc := NewUploadService[models.GalleryImage](table, blobs, GalleryBinding, zerolog.Nop())

	table.FailNext(errors.New("insert rejected"))
	_, err := svc.Upload(ctx, admin, filestorage.Blob{Filename: "a.png", Size: 3, Body: bytes.NewReader([]byte("png"))}, "A", "")

	var uploadErr *apperrors.UploadError
	if !errors.As(err, &uploadErr) || !uploadErr.Orphaned {
		t.Fatalf("error = %v, want orphaned UploadError", err)
	}
}

func TestUploadStoreFailure(t *testing.T) {
	blobs := newFakeBlobs()
	blobs.uploadErr = errors.New("disk full")
	repos := repositories.NewMemoryRepositories()
	svc := NewUploadService(repos.Resources, blobs, ResourceBinding, zerolog.Nop())

	_, err := svc.Upload(context.Background(), admin, pdf("x.pdf"), "X", "")
	var uploadErr *apperrors.UploadError
	if !errors.As(err, &uploadErr) || uploadErr.Phase != apperrors.PhaseStore {
		t.Fatalf("error = %v, want store-phase UploadError", err)
	}
	if items, _ := svc.List(context.Background()); len(items) != 0 {
		t.Errorf("row inserted despite failed store")
	}
}

func TestUploadRejectsEmptyInput(t *testing.T) {
	svc := NewUploadService(repositories.NewMemoryRepositories().Resources, newFakeBlobs(), ResourceBinding, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Upload(ctx, admin, pdf("x.pdf"), "  ", ""); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("missing title error = %v", err)
	}
	empty := filestorage.Blob{Filename: "x.pdf", Body: strings.NewReader("")}
	if _, err := svc.Upload(ctx, admin, empty, "X", ""); !errors.Is(err, apperrors.ErrEmptyUpload) {
		t.Errorf("empty blob error = %v", err)
	}
	if err := svc.Create(ctx, &models.Resource{Title: "direct"}); !errors.Is(err, apperrors.ErrUploadRequired) {
		t.Errorf("direct create error = %v", err)
	}
}

func TestUploadDelete(t *testing.T) {
	ctx := context.Background()
	blobs := newFakeBlobs()
	svc := NewUploadService(repositories.NewMemoryRepositories().Gallery, blobs, GalleryBinding, zerolog.Nop())

	img, err := svc.Upload(ctx, admin, filestorage.Blob{Filename: "team.jpg", Size: 4, Body: strings.NewReader("jpeg")}, "Team", "2025")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if err := svc.Delete(ctx, img.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if blobs.count() != 0 {
		t.Error("blob not removed with its row")
	}

	var writeErr *apperrors.WriteError
	if err := svc.Delete(ctx, img.ID); !errors.As(err, &writeErr) || writeErr.Op != apperrors.OpDelete {
		t.Errorf("second delete error = %v, want WriteError", err)
	}
}

func TestUploadDeleteSucceedsWhenBlobRemovalFails(t *testing.T) {
	ctx := context.Background()
	blobs := newFakeBlobs()
	svc := NewUploadService(repositories.NewMemoryRepositories().Resources, blobs, ResourceBinding, zerolog.Nop())

	res, err := svc.Upload(ctx, admin, pdf("keep.pdf"), "Keep", "")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	blobs.removeErr = errors.New("storage offline")

	if err := svc.Delete(ctx, res.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if items, _ := svc.List(ctx); len(items) != 0 {
		t.Error("row still listed after delete")
	}
}

func TestContentServiceErrorTaxonomy(t *testing.T) {
	ctx := context.Background()
	table := memstore.NewTable[models.Event](models.EventLess)
	svc := NewContentService[models.Event](models.EntityEvent, table, zerolog.Nop())

	table.FailNext(errors.New("timeout"))
	var fetchErr *apperrors.FetchError
	if _, err := svc.List(ctx); !errors.As(err, &fetchErr) || fetchErr.Entity != models.EntityEvent {
		t.Errorf("List error = %v, want FetchError", err)
	}

	var writeErr *apperrors.WriteError
	missing := uuid.New()
	if err := svc.Delete(ctx, missing); !errors.As(err, &writeErr) || writeErr.ID != missing.String() {
		t.Errorf("Delete error = %v, want WriteError for %s", err, missing)
	}
	if !errors.Is(writeErr, apperrors.ErrResourceNotFound) {
		t.Errorf("WriteError does not unwrap to not found: %v", writeErr)
	}

	ghost := &models.Event{Base: models.Base{ID: missing}, Title: "ghost"}
	if err := svc.Update(ctx, ghost); !errors.As(err, &writeErr) || writeErr.Op != apperrors.OpUpdate {
		t.Errorf("Update error = %v, want WriteError", err)
	}
}

func TestFilterResources(t *testing.T) {
	pdfType := "application/pdf"
	zip := "application/zip"
	resources := []models.Resource{
		{Title: "Python Basics", FileType: &pdfType},
		{Title: "C++ Guide", FileType: &zip},
		{Title: "Straße Notes"},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"py", []string{"Python Basics"}},
		{"PY", []string{"Python Basics"}},
		{"", []string{"Python Basics", "C++ Guide", "Straße Notes"}},
		{"zip", []string{"C++ Guide"}},
		{"application", []string{"Python Basics", "C++ Guide"}},
		{"STRASSE", []string{"Straße Notes"}},
		{"rust", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := FilterResources(resources, tt.term)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterResources(%q) returned %d items, want %d", tt.term, len(got), len(tt.want))
			}
			for i, r := range got {
				if r.Title != tt.want[i] {
					t.Errorf("item %d = %q, want %q", i, r.Title, tt.want[i])
				}
			}
		})
	}
}
