//go:build !unix && !windows

package osfs

import "github.com/jmgilman/go/fsio/core"

// classify wraps err in a *core.SysError using the portable io/fs kinds.
func classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return core.NewSysError(op, path, core.KindOf(err), err)
}
