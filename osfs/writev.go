//go:build linux || darwin

package osfs

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/fsio/core"
)

// Writev writes bufs with a single writev(2) call. The count is whatever the
// kernel accepted and may be short.
func (f *file) Writev(bufs [][]byte) (int, error) {
	rc, err := f.f.SyscallConn()
	if err != nil {
		return 0, classify("writev", f.name, err)
	}

	var n int
	var werr error
	err = rc.Write(func(fd uintptr) bool {
		for {
			n, werr = unix.Writev(int(fd), bufs)
			if werr != unix.EINTR {
				return true
			}
		}
	})
	if err != nil {
		return 0, classify("writev", f.name, err)
	}
	if werr != nil {
		if n < 0 {
			n = 0
		}
		return n, classify("writev", f.name, &os.PathError{Op: "writev", Path: f.name, Err: werr})
	}
	return n, nil
}

var _ core.VectorWriter = (*file)(nil)
