package core

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/filesort/pkg/config"
	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/arthur-debert/filesort/pkg/testutil"
	"github.com/arthur-debert/filesort/pkg/types"
)

func testConfig() *config.Config {
	return &config.Config{
		Rules: []rules.Rule{
			{
				Name:         "documents",
				Kind:         rules.KindExtension,
				Patterns:     []string{".txt"},
				OutputFolder: "docs",
			},
			{
				Name:         "images",
				Kind:         rules.KindExtension,
				Patterns:     []string{".jpg"},
				OutputFolder: "images",
			},
		},
		Settings: config.Settings{
			UnmatchedFolder: "others",
		},
	}
}

func fixedClock() time.Time {
	return time.Date(2026, 8, 25, 14, 30, 12, 0, time.UTC)
}

func TestOrganize(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFileT(t, fs, "input/b.txt", "b")
	testutil.CreateFileT(t, fs, "input/a.txt", "a")
	testutil.CreateFileT(t, fs, "input/photo.jpg", "p")
	testutil.CreateFileT(t, fs, "input/xyz.weird", "x")

	var progress bytes.Buffer
	result, err := Organize(OrganizeOptions{
		SourceDir: "input",
		Config:    testConfig(),
		FS:        fs,
		Progress:  &progress,
		Clock:     fixedClock,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, map[string]int{"docs": 2, "images": 1, "others": 1}, result.Stats)
	assert.Empty(t, result.Errors)
	assert.Equal(t, 4, result.Processed())
	assert.Equal(t, 4, result.Succeeded())

	// Output root defaults to the source dir
	assert.True(t, testutil.Exists(fs, "input/docs/a.txt"))
	assert.True(t, testutil.Exists(fs, "input/docs/b.txt"))
	assert.True(t, testutil.Exists(fs, "input/images/photo.jpg"))
	assert.True(t, testutil.Exists(fs, "input/others/xyz.weird"))
	assert.False(t, testutil.Exists(fs, "input/a.txt"))

	// Progress lines come in sorted name order
	lines := strings.Split(strings.TrimSpace(progress.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "a.txt")
	assert.Contains(t, lines[1], "b.txt")
	assert.Contains(t, lines[2], "photo.jpg")
	assert.Contains(t, lines[3], "xyz.weird")
}

func TestOrganize_SeparateOutputRoot(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFileT(t, fs, "input/a.txt", "a")

	result, err := Organize(OrganizeOptions{
		SourceDir: "input",
		OutputDir: "sorted",
		Config:    testConfig(),
		FS:        fs,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, testutil.Exists(fs, "sorted/docs/a.txt"))
	assert.False(t, testutil.Exists(fs, "input/docs"))
}

func TestOrganize_EmptySourceIsNothingToDo(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateDirT(t, fs, "input")

	result, err := Organize(OrganizeOptions{
		SourceDir: "input",
		Config:    testConfig(),
		FS:        fs,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestOrganize_DryRun(t *testing.T) {
	cfg := testConfig()
	cfg.Settings.DryRun = true

	fs := testutil.NewTestFS()
	testutil.CreateFileT(t, fs, "input/a.txt", "a")
	testutil.CreateFileT(t, fs, "input/photo.jpg", "p")

	var progress bytes.Buffer
	result, err := Organize(OrganizeOptions{
		SourceDir: "input",
		Config:    cfg,
		FS:        fs,
		Progress:  &progress,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.DryRun)
	assert.Equal(t, map[string]int{"docs": 1, "images": 1}, result.Stats)
	assert.Contains(t, progress.String(), "DRY-RUN")

	// Nothing moved, nothing created
	assert.True(t, testutil.Exists(fs, "input/a.txt"))
	assert.True(t, testutil.Exists(fs, "input/photo.jpg"))
	assert.False(t, testutil.Exists(fs, "input/docs"))
	assert.False(t, testutil.Exists(fs, "input/images"))
}

func TestOrganize_SkipsResolvedConfigFile(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFileT(t, fs, "input/a.txt", "a")
	testutil.CreateFileT(t, fs, "input/myrules.toml", "[[rules]]")

	result, err := Organize(OrganizeOptions{
		SourceDir:      "input",
		Config:         testConfig(),
		FS:             fs,
		ConfigFileName: "myrules.toml",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// The config file stays put even under a non-default name
	assert.True(t, testutil.Exists(fs, "input/myrules.toml"))
	assert.False(t, testutil.Exists(fs, "input/others/myrules.toml"))
	assert.Equal(t, map[string]int{"docs": 1}, result.Stats)
}

// failRenameFS makes Rename fail for one base name, to exercise per-file
// failure isolation.
type failRenameFS struct {
	types.FS
	failName string
}

func (f *failRenameFS) Rename(oldpath, newpath string) error {
	if filepath.Base(oldpath) == f.failName {
		return fmt.Errorf("simulated rename failure for %s", oldpath)
	}
	return f.FS.Rename(oldpath, newpath)
}

func TestOrganize_PartialFailureIsolation(t *testing.T) {
	inner := testutil.NewTestFS()
	testutil.CreateFileT(t, inner, "input/a.txt", "a")
	testutil.CreateFileT(t, inner, "input/b.txt", "b")
	testutil.CreateFileT(t, inner, "input/c.txt", "c")

	fs := &failRenameFS{FS: inner, failName: "b.txt"}

	result, err := Organize(OrganizeOptions{
		SourceDir: "input",
		Config:    testConfig(),
		FS:        fs,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	// A and C moved, B recorded as the only failure
	assert.Equal(t, map[string]int{"docs": 2}, result.Stats)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "b.txt")
	assert.Equal(t, 3, result.Processed())

	assert.True(t, testutil.Exists(inner, "input/docs/a.txt"))
	assert.True(t, testutil.Exists(inner, "input/docs/c.txt"))
	assert.True(t, testutil.Exists(inner, "input/b.txt"))
}
