//go:build !linux && !darwin && !freebsd && !windows

package osfs

import "github.com/jmgilman/go/fsio/core"

// Statfs is not available on this platform.
func (fsys *FS) Statfs(name string) (core.Space, error) {
	return core.Space{}, core.NewSysError("statfs", name, core.ErrUnsupported, nil)
}
