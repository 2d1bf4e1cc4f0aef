package operations

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/filesort/pkg/errors"
	"github.com/arthur-debert/filesort/pkg/logging"
	"github.com/arthur-debert/filesort/pkg/types"
)

// Mover relocates files into their destination folders
type Mover struct {
	fs        types.FS
	overwrite bool
	dryRun    bool
	now       func() time.Time
	logger    zerolog.Logger
}

// NewMover creates a mover. With dryRun set it performs no filesystem
// mutation at all: no destination directories are created and no file is
// renamed.
func NewMover(fsys types.FS, overwrite, dryRun bool) *Mover {
	return &Mover{
		fs:        fsys,
		overwrite: overwrite,
		dryRun:    dryRun,
		now:       time.Now,
		logger:    logging.GetLogger("operations.mover"),
	}
}

// WithClock overrides the clock used for collision timestamps. Tests pin it
// to make renamed paths deterministic.
func (m *Mover) WithClock(now func() time.Time) *Mover {
	m.now = now
	return m
}

// Execute moves one file into destDir, creating the directory tree as
// needed. The returned outcome is final: failures are recorded in it, never
// raised.
func (m *Mover) Execute(entry types.FileEntry, destDir string) types.MoveOutcome {
	folder := filepath.Base(destDir)

	if m.dryRun {
		final := ResolveCollision(m.fs, destDir, entry.Name, m.overwrite, m.now())
		m.logger.Debug().
			Str("file", entry.Name).
			Str("dest", final).
			Msg("Dry run, move simulated")
		return types.MoveOutcome{
			Success:   true,
			FinalPath: final,
			Message:   fmt.Sprintf("[DRY-RUN] %s  ->  %s/", entry.Name, folder),
		}
	}

	if err := m.fs.MkdirAll(destDir, 0755); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create destination %s", destDir)
		m.logger.Warn().Err(err).Str("dir", destDir).Msg("Destination creation failed")
		return types.MoveOutcome{
			Message: fmt.Sprintf("[ERR] %s  ->  move failed (%v)", entry.Name, wrapped),
			Err:     wrapped,
		}
	}

	final := ResolveCollision(m.fs, destDir, entry.Name, m.overwrite, m.now())

	// Renaming onto an existing file is backend-dependent, so overwrite
	// clears the destination explicitly instead of relying on it.
	if m.overwrite {
		if _, err := m.fs.Stat(final); err == nil {
			if err := m.fs.Remove(final); err != nil {
				wrapped := errors.Wrapf(err, errors.ErrFileMove,
					"failed to replace %s", final)
				m.logger.Warn().Err(err).Str("dest", final).Msg("Overwrite failed")
				return types.MoveOutcome{
					Message: fmt.Sprintf("[ERR] %s  ->  move failed (%v)", entry.Name, wrapped),
					Err:     wrapped,
				}
			}
		}
	}

	if err := m.fs.Rename(entry.SourcePath(), final); err != nil {
		wrapped := errors.Wrapf(err, errors.ErrFileMove,
			"failed to move %s", entry.Name)
		m.logger.Warn().
			Err(err).
			Str("file", entry.Name).
			Str("dest", final).
			Msg("Move failed")
		return types.MoveOutcome{
			Message: fmt.Sprintf("[ERR] %s  ->  move failed (%v)", entry.Name, wrapped),
			Err:     wrapped,
		}
	}

	m.logger.Debug().
		Str("file", entry.Name).
		Str("dest", final).
		Msg("File moved")
	return types.MoveOutcome{
		Success:   true,
		FinalPath: final,
		Message:   fmt.Sprintf("[OK] %s  ->  %s/", entry.Name, folder),
	}
}
