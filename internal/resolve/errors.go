package resolve

import (
	"errors"
	"io/fs"
	"syscall"
)

// isNotExist reports whether err means the path is absent. A path whose
// parent is a regular file reports ENOTDIR on most platforms.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
