package config

// Settings holds session-level behavior switches. Missing keys fall back to
// the embedded defaults: overwrite=false, dry_run=false,
// unmatched_folder="others".
type Settings struct {
	// Overwrite replaces same-named files at the destination instead of
	// renaming the incoming file
	Overwrite bool `koanf:"overwrite" toml:"overwrite" yaml:"overwrite" json:"overwrite"`

	// DryRun reports intended moves without touching the filesystem
	DryRun bool `koanf:"dry_run" toml:"dry_run" yaml:"dry_run" json:"dry_run"`

	// UnmatchedFolder is the category for files no rule matched
	UnmatchedFolder string `koanf:"unmatched_folder" toml:"unmatched_folder" yaml:"unmatched_folder" json:"unmatched_folder"`
}

// DefaultUnmatchedFolder is the fallback category name.
const DefaultUnmatchedFolder = "others"
