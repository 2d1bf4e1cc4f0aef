package testutil

import (
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"

	"github.com/arthur-debert/filesort/pkg/types"
)

// TestFS wraps filesystem.TestFileSystem to implement types.FS, giving
// tests a fully in-memory filesystem.
type TestFS struct {
	*filesystem.TestFileSystem
}

// NewTestFS creates a new in-memory filesystem
func NewTestFS() types.FS {
	return &TestFS{
		TestFileSystem: filesystem.NewTestFileSystem(),
	}
}
