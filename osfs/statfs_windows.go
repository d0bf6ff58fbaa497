//go:build windows

package osfs

import (
	"os"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/fsio/core"
)

// Statfs reports the capacity of the volume holding name. Windows has no
// block count, so Blocks carries the total byte count.
func (fsys *FS) Statfs(name string) (core.Space, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return core.Space{}, core.NewSysError("statfs", name, core.ErrInvalidName, err)
	}

	var callerFree, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p, &callerFree, &total, &totalFree); err != nil {
		return core.Space{}, classify("statfs", name, &os.PathError{Op: "GetDiskFreeSpaceEx", Path: name, Err: err})
	}

	return core.Space{
		Free:   totalFree,
		Total:  total,
		Blocks: total,
	}, nil
}
