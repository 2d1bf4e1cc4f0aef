package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/filesort/pkg/types"
)

// CreateFileT creates a file in the given filesystem
func CreateFileT(t *testing.T, fs types.FS, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := fs.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

// CreateDirT creates a directory in the given filesystem
func CreateDirT(t *testing.T, fs types.FS, path string) {
	t.Helper()

	if err := fs.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

// Exists reports whether a path exists in the given filesystem
func Exists(fs types.FS, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
