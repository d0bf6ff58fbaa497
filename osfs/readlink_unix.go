//go:build unix

package osfs

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/fsio/core"
)

// Readlink returns the target of the symbolic link name. A path that is not
// a link fails with core.ErrNotLink.
func (fsys *FS) Readlink(name string) (string, error) {
	target, err := os.Readlink(name)
	if err != nil {
		if errors.Is(err, unix.EINVAL) {
			return "", core.NewSysError("readlink", name, core.ErrNotLink, err)
		}
		return "", classify("readlink", name, err)
	}
	return target, nil
}

var _ core.LinkReader = (*FS)(nil)
