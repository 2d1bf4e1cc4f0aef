package types

import (
	"path/filepath"
	"time"
)

// FileEntry is one candidate source file, identified by its name and the
// directory it lives in. Entries are snapshotted at session start and never
// mutated afterwards.
type FileEntry struct {
	// Name is the base name of the file
	Name string

	// Dir is the absolute path of the directory containing the file
	Dir string
}

// SourcePath returns the full path of the entry at its original location.
func (e FileEntry) SourcePath() string {
	return filepath.Join(e.Dir, e.Name)
}

// UnmatchedRule is the sentinel rule name reported for files no rule
// matched. Callers substitute the configured unmatched folder.
const UnmatchedRule = "unmatched"

// ClassificationResult is the outcome of matching one filename against the
// rule list.
type ClassificationResult struct {
	// OutputFolder is the destination category folder, empty when unmatched
	OutputFolder string

	// RuleName is the name of the matching rule, or UnmatchedRule
	RuleName string
}

// Matched reports whether any rule matched.
func (c ClassificationResult) Matched() bool {
	return c.RuleName != UnmatchedRule
}

// MoveOutcome is the result of one move attempt. Failures are data, not
// errors: a failed move never aborts the session.
type MoveOutcome struct {
	// Success is true when the file was moved (or would be, in dry-run)
	Success bool

	// FinalPath is the resolved destination path
	FinalPath string

	// Message is the human-readable progress line for this file
	Message string

	// Err holds the underlying failure, nil on success
	Err error
}

// SessionResult aggregates everything one organize session produced.
type SessionResult struct {
	// RunID uniquely identifies the session
	RunID string

	// Stats maps destination folder to the count of files placed there
	Stats map[string]int

	// Errors holds per-file failure messages in processing order
	Errors []string

	// Elapsed is the wall-clock duration of the session
	Elapsed time.Duration

	// DryRun records whether the session simulated its moves
	DryRun bool
}

// Processed returns the total number of files handled, successes plus
// failures.
func (r *SessionResult) Processed() int {
	return r.Succeeded() + len(r.Errors)
}

// Succeeded returns the number of files successfully placed.
func (r *SessionResult) Succeeded() int {
	total := 0
	for _, n := range r.Stats {
		total += n
	}
	return total
}
