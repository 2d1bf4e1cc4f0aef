package operations

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/filesort/pkg/types"
)

// collisionTimestampFormat is YYYYMMDD_HHMMSS, second precision.
const collisionTimestampFormat = "20060102_150405"

// ResolveCollision decides the final destination path for a file. When
// overwrite is set, or nothing occupies destDir/filename, the final path is
// exactly that. Otherwise the incoming file is renamed by inserting a
// timestamp between stem and extension, so the existing file is never
// clobbered.
//
// Known limitation: two collisions on the same name within the same second
// resolve to the same renamed path. Accepted, not retried with extra
// entropy.
func ResolveCollision(fsys types.FS, destDir, filename string, overwrite bool, now time.Time) string {
	dest := filepath.Join(destDir, filename)
	if overwrite {
		return dest
	}
	if _, err := fsys.Stat(dest); err != nil {
		// Nothing there, the plain path is free
		return dest
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	renamed := fmt.Sprintf("%s_%s%s", stem, now.Format(collisionTimestampFormat), ext)
	return filepath.Join(destDir, renamed)
}
