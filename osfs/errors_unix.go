//go:build unix

package osfs

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/go/fsio/core"
)

// classify wraps err in a *core.SysError whose kind is derived from the
// errno it carries.
func classify(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return core.NewSysError(op, path, kindOf(err), err)
}

func kindOf(err error) error {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return core.KindOf(err)
	}

	switch errno {
	case unix.ENOENT:
		return core.ErrNotExist
	case unix.ENOTDIR:
		return core.ErrNotDir
	case unix.EEXIST:
		return core.ErrExist
	case unix.EISDIR:
		return core.ErrIsDir
	case unix.ENOTEMPTY:
		return core.ErrNotEmpty
	case unix.EACCES, unix.EPERM:
		return core.ErrPermission
	case unix.ELOOP, unix.ENAMETOOLONG:
		return core.ErrInvalidName
	case unix.EMFILE, unix.ENFILE:
		return core.ErrResourceLimit
	case unix.EBUSY, unix.EROFS:
		return core.ErrBusy
	case unix.EBADF, unix.EINTR:
		return core.ErrBadHandle
	case unix.ENOSYS, unix.EOPNOTSUPP:
		return core.ErrUnsupported
	default:
		return nil
	}
}
