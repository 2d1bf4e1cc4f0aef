package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/filesort/pkg/testutil"
)

func TestListFiles(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFileT(t, fs, "input/b.txt", "b")
	testutil.CreateFileT(t, fs, "input/a.txt", "a")
	testutil.CreateFileT(t, fs, "input/filesort.toml", "[settings]")
	testutil.CreateFileT(t, fs, "input/.filesort.lock", "")
	testutil.CreateDirT(t, fs, "input/docs")

	entries, err := ListFiles(fs, "input", SkipNames())
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	// Sorted, directories and skip-listed names excluded
	assert.Equal(t, []string{"a.txt", "b.txt"}, names)
	assert.Equal(t, "input", entries[0].Dir)
	assert.Equal(t, "input/a.txt", entries[0].SourcePath())
}

func TestListFiles_MissingDir(t *testing.T) {
	fs := testutil.NewTestFS()
	_, err := ListFiles(fs, "nope", SkipNames())
	assert.Error(t, err)
}

func TestSkipNames_Extra(t *testing.T) {
	skip := SkipNames("myrules.toml", "")
	_, ok := skip["myrules.toml"]
	assert.True(t, ok)
	_, ok = skip[""]
	assert.False(t, ok)
}
