package types

import "io/fs"

// FS abstracts the filesystem operations filesort performs. Production code
// uses the OS implementation in pkg/filesystem; tests use an in-memory
// implementation from pkg/testutil.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Rename(oldpath, newpath string) error
	Remove(name string) error
	ReadDir(name string) ([]fs.DirEntry, error)
}
