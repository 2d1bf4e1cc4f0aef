package core

import (
	"sort"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/paths"
	"github.com/arthur-debert/filesort/pkg/types"
)

// SkipNames returns the file names a session never moves: the lock file and
// any config file living in the source directory, plus an explicit extra
// name (the resolved config file, which may have a non-default name).
func SkipNames(extra ...string) map[string]struct{} {
	skip := map[string]struct{}{
		paths.LockFileName: {},
	}
	for _, name := range paths.ConfigFileNames {
		skip[name] = struct{}{}
	}
	for _, name := range extra {
		if name != "" {
			skip[name] = struct{}{}
		}
	}
	return skip
}

// ListFiles snapshots the candidate files of dir, sorted by name. Listing
// is non-recursive; subdirectories (including previously created category
// folders) and skip-listed names are excluded.
func ListFiles(fsys types.FS, dir string, skip map[string]struct{}) ([]types.FileEntry, error) {
	dirEntries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceAccess,
			"failed to read source directory %s", dir)
	}

	var entries []types.FileEntry
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		if _, skipped := skip[de.Name()]; skipped {
			continue
		}
		entries = append(entries, types.FileEntry{Name: de.Name(), Dir: dir})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}
