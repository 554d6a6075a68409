package filestorage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	return ls
}

func TestLocalStorage_UploadAndRemove(t *testing.T) {
	ls := newTestStorage(t)
	ctx := context.Background()

	if err := ls.Upload(ctx, BucketFiles, "1700000000000-abcd1234.pdf", strings.NewReader("%PDF-1.7")); err != nil {
		t.Fatalf("Upload: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(ls.BasePath(), BucketFiles, "1700000000000-abcd1234.pdf"))
	if err != nil {
		t.Fatalf("stored file not found: %v", err)
	}
	if string(data) != "%PDF-1.7" {
		t.Errorf("stored content = %q", data)
	}

	url := ls.PublicURL(BucketFiles, "1700000000000-abcd1234.pdf")
	if url != "http://localhost:8080/uploads/files/1700000000000-abcd1234.pdf" {
		t.Errorf("PublicURL = %q", url)
	}
	if KeyFromURL(url) != "1700000000000-abcd1234.pdf" {
		t.Errorf("KeyFromURL(%q) = %q", url, KeyFromURL(url))
	}

	if err := ls.Remove(ctx, BucketFiles, "1700000000000-abcd1234.pdf"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	// removing again is not an error
	if err := ls.Remove(ctx, BucketFiles, "1700000000000-abcd1234.pdf"); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestLocalStorage_NeverOverwrites(t *testing.T) {
	ls := newTestStorage(t)
	ctx := context.Background()

	if err := ls.Upload(ctx, BucketGallery, "same.png", strings.NewReader("first")); err != nil {
		t.Fatalf("first Upload: %v", err)
	}
	if err := ls.Upload(ctx, BucketGallery, "same.png", strings.NewReader("second")); err == nil {
		t.Fatal("expected second upload under the same key to fail")
	}

	data, _ := os.ReadFile(filepath.Join(ls.BasePath(), BucketGallery, "same.png"))
	if string(data) != "first" {
		t.Errorf("existing blob was overwritten: %q", data)
	}
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ls := newTestStorage(t)
	ctx := context.Background()

	for _, key := range []string{"", "..", "../escape.txt", "nested/key.txt", `win\key.txt`} {
		if err := ls.Upload(ctx, BucketFiles, key, strings.NewReader("x")); err == nil {
			t.Errorf("Upload accepted key %q", key)
		}
	}
	if err := ls.Upload(ctx, "../up", "ok.txt", strings.NewReader("x")); err == nil {
		t.Error("Upload accepted bucket ../up")
	}
}

func TestNewStorageKey(t *testing.T) {
	at := time.UnixMilli(1736500000123)

	first := NewStorageKey(at, "report.pdf")
	second := NewStorageKey(at, "report.pdf")
	later := NewStorageKey(at.Add(time.Second), "report.pdf")

	if !strings.HasPrefix(first, "1736500000123-") || !strings.HasSuffix(first, ".pdf") {
		t.Errorf("unexpected key shape %q", first)
	}
	if first == second {
		t.Errorf("keys generated in the same millisecond collided: %q", first)
	}
	if first == later {
		t.Errorf("keys generated at different times collided: %q", first)
	}
	if got := NewStorageKey(at, "Photo.JPG"); !strings.HasSuffix(got, ".jpg") {
		t.Errorf("extension not normalised: %q", got)
	}
	if got := NewStorageKey(at, "README"); strings.Contains(got, ".") {
		t.Errorf("extensionless file got an extension: %q", got)
	}
}

func TestKeyFromURL(t *testing.T) {
	tests := map[string]string{
		"":                                        "",
		"http://host/uploads/gallery/1-ab.png":    "1-ab.png",
		"http://host/uploads/files/1-ab.pdf?dl=1": "1-ab.pdf",
		"1-ab.pdf":                                "1-ab.pdf",
	}
	for in, want := range tests {
		if got := KeyFromURL(in); got != want {
			t.Errorf("KeyFromURL(%q) = %q, want %q", in, got, want)
		}
	}
}
