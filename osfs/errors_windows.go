//go:build windows

package osfs

import (
	"errors"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/go/fsio/core"
)

// classify wraps err in a *core.SysError whose kind is derived from the
// Win32 error code it carries.
func classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return core.NewSysError(op, path, kindOf(err), err)
}

func kindOf(err error) error {
	var errno windows.Errno
	if !errors.As(err, &errno) {
		return core.KindOf(err)
	}

	switch errno {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return core.ErrNotExist
	case windows.ERROR_DIRECTORY:
		return core.ErrNotDir
	case windows.ERROR_FILE_EXISTS, windows.ERROR_ALREADY_EXISTS:
		return core.ErrExist
	case windows.ERROR_DIR_NOT_EMPTY:
		return core.ErrNotEmpty
	case windows.ERROR_ACCESS_DENIED:
		return core.ErrPermission
	case windows.ERROR_INVALID_NAME, windows.ERROR_FILENAME_EXCED_RANGE:
		return core.ErrInvalidName
	case windows.ERROR_TOO_MANY_OPEN_FILES:
		return core.ErrResourceLimit
	case windows.ERROR_SHARING_VIOLATION, windows.ERROR_BUSY, windows.ERROR_WRITE_PROTECT:
		return core.ErrBusy
	case windows.ERROR_INVALID_HANDLE:
		return core.ErrBadHandle
	default:
		return core.KindOf(err)
	}
}
