// Package paths resolves where filesort keeps its configuration, following
// the XDG base directory spec.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigFileNames are the file names probed, in order, inside each config
// location. The first one that exists wins.
var ConfigFileNames = []string{
	"filesort.toml",
	".filesort.toml",
	"filesort.yaml",
	"filesort.json",
}

// XDGConfigFile is the path of the user-level config file.
func XDGConfigFile() string {
	return filepath.Join(xdg.ConfigHome, "filesort", "config.toml")
}

// LockFileName is the name of the per-source-directory session lock.
const LockFileName = ".filesort.lock"

// FindConfig returns the config file to load: the explicit path when given,
// otherwise the first candidate found in the source directory, otherwise the
// XDG user config if present. An empty return means "no config file, use
// defaults".
func FindConfig(explicit, sourceDir string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range ConfigFileNames {
		candidate := filepath.Join(sourceDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	if path := XDGConfigFile(); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
