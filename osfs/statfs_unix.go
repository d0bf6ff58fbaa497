//go:build linux || darwin || freebsd

package osfs

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/fsio/core"
)

// Statfs reports the capacity of the filesystem holding name. Free space is
// the space available to unprivileged callers.
func (fsys *FS) Statfs(name string) (core.Space, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(name, &st); err != nil {
		return core.Space{}, classify("statfs", name, &os.PathError{Op: "statfs", Path: name, Err: err})
	}

	bsize := uint64(st.Bsize)
	return core.Space{
		Free:   bsize * uint64(st.Bavail),
		Total:  bsize * uint64(st.Blocks),
		Blocks: uint64(st.Blocks),
	}, nil
}
