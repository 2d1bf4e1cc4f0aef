package core

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/filesort/pkg/config"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/operations"
	"github.com/arthur-debert/filesort/pkg/rules"
	"github.com/arthur-debert/filesort/pkg/types"
)

// OrganizeOptions configures one session
type OrganizeOptions struct {
	// SourceDir is the directory whose files are triaged
	SourceDir string

	// OutputDir is the root under which category folders are created.
	// Empty means the source directory itself.
	OutputDir string

	// Config carries the rules and settings, already loaded and validated
	Config *config.Config

	// FS is the filesystem to operate on
	FS types.FS

	// ConfigFileName is the base name of the resolved config file, skipped
	// during listing in case it lives in the source directory under a
	// non-default name. Empty when running on defaults.
	ConfigFileName string

	// Progress receives one line per processed file. Nil discards them.
	Progress io.Writer

	// Clock overrides the collision timestamp clock, for tests
	Clock func() time.Time
}

// Organize runs one session. The returned result is nil, with a nil error,
// when the source directory holds no candidate files: nothing to do, no
// report.
//
// Per-file failures never abort the session; they are accumulated in the
// result. Files already moved stay moved regardless of later failures.
func Organize(opts OrganizeOptions) (*types.SessionResult, error) {
	logger := logging.GetLogger("core.session")
	start := time.Now()

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = opts.SourceDir
	}

	entries, err := ListFiles(opts.FS, opts.SourceDir, SkipNames(opts.ConfigFileName))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		logger.Info().Str("dir", opts.SourceDir).Msg("No files to process")
		return nil, nil
	}

	settings := opts.Config.Settings
	runID := uuid.NewString()
	logger.Info().
		Str("runId", runID).
		Str("source", opts.SourceDir).
		Str("output", outputDir).
		Int("files", len(entries)).
		Bool("dryRun", settings.DryRun).
		Msg("Session started")

	matcher := rules.NewMatcher(opts.Config.Rules)
	mover := operations.NewMover(opts.FS, settings.Overwrite, settings.DryRun)
	if opts.Clock != nil {
		mover.WithClock(opts.Clock)
	}

	result := &types.SessionResult{
		RunID:  runID,
		Stats:  make(map[string]int),
		DryRun: settings.DryRun,
	}

	for _, entry := range entries {
		classification := matcher.Classify(entry.Name)
		folder := classification.OutputFolder
		if !classification.Matched() {
			folder = settings.UnmatchedFolder
		}

		outcome := mover.Execute(entry, filepath.Join(outputDir, folder))
		progress(opts.Progress, outcome.Message)

		if outcome.Success {
			result.Stats[folder]++
		} else {
			result.Errors = append(result.Errors, outcome.Message)
		}
	}

	result.Elapsed = time.Since(start)
	logger.Info().
		Str("runId", runID).
		Int("succeeded", result.Succeeded()).
		Int("failed", len(result.Errors)).
		Dur("elapsed", result.Elapsed).
		Msg("Session finished")

	return result, nil
}

func progress(w io.Writer, line string) {
	if w == nil {
		return
	}
	fmt.Fprintln(w, line)
}
