//go:build !unix

package osfs

import (
	"os"

	"github.com/jmgilman/go/fsio/core"
)

// os.Remove accepts both files and directories, so the entry type is checked
// first to keep unlink and rmdir distinct.

func unlink(name string) error {
	fi, err := os.Lstat(name)
	if err != nil {
		return classify("unlink", name, err)
	}
	if fi.IsDir() {
		return core.NewSysError("unlink", name, core.ErrIsDir, nil)
	}
	if err := os.Remove(name); err != nil {
		return classify("unlink", name, err)
	}
	return nil
}

func rmdir(name string) error {
	fi, err := os.Lstat(name)
	if err != nil {
		return classify("rmdir", name, err)
	}
	if !fi.IsDir() {
		return core.NewSysError("rmdir", name, core.ErrNotDir, nil)
	}
	if err := os.Remove(name); err != nil {
		return classify("rmdir", name, err)
	}
	return nil
}
