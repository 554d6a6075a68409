package migrations

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSQLFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_more.sql", "001_init.sql", "README.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "003_dir.sql"), 0o700); err != nil {
		t.Fatal(err)
	}

	got, err := sqlFiles(dir)
	if err != nil {
		t.Fatalf("sqlFiles: %v", err)
	}
	if want := []string{"001_init.sql", "002_more.sql"}; !reflect.DeepEqual(got, want) {
		t.Errorf("sqlFiles() = %v, want %v", got, want)
	}
}

func TestVersionOf(t *testing.T) {
	tests := map[string]string{
		"001_init.sql":           "001",
		"migrations/002_a_b.sql": "002",
		"nounderscore.sql":       "nounderscore.sql",
	}
	for in, want := range tests {
		if got := versionOf(in); got != want {
			t.Errorf("versionOf(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRepositoryMigrationsPresent(t *testing.T) {
	files, err := sqlFiles(filepath.Join("..", "..", "..", "migrations"))
	if err != nil {
		t.Fatalf("sqlFiles: %v", err)
	}
	if len(files) == 0 || files[0] != "001_init.sql" {
		t.Errorf("expected 001_init.sql first, got %v", files)
	}
}
