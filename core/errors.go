package core

import (
	"errors"
	"io/fs"
)

// Error kinds reported by backends. Backends wrap the platform error so that
// errors.Is(err, kind) holds for exactly one of these.
var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is returned when an operation is performed on a closed file.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed

	// ErrUnsupported is returned when an operation is not supported by the
	// backend or the platform.
	ErrUnsupported = errors.New("operation not supported")

	// ErrNotDir is returned when a path component that must be a directory
	// is not one.
	ErrNotDir = errors.New("not a directory")

	// ErrIsDir is returned when a directory is used where a non-directory is
	// required.
	ErrIsDir = errors.New("is a directory")

	// ErrNotEmpty is returned when removing a directory that has entries.
	ErrNotEmpty = errors.New("directory not empty")

	// ErrNotLink is returned by Readlink when the path is not a symbolic link.
	ErrNotLink = errors.New("not a symbolic link")

	// ErrInvalidName is returned for malformed paths: a name that is too
	// long or that loops through symbolic links.
	ErrInvalidName = errors.New("invalid path name")

	// ErrResourceLimit is returned when the process or system has run out of
	// descriptors.
	ErrResourceLimit = errors.New("too many open files")

	// ErrBusy is returned when the target is in use or on a read-only
	// filesystem.
	ErrBusy = errors.New("resource busy or read-only")

	// ErrBadHandle is returned when a handle is invalid or the operation was
	// interrupted.
	ErrBadHandle = errors.New("bad or interrupted handle")
)

// kinds lists every sentinel in match priority order.
var kinds = []error{
	ErrNotExist,
	ErrNotDir,
	ErrIsDir,
	ErrNotEmpty,
	ErrNotLink,
	ErrExist,
	ErrPermission,
	ErrClosed,
	ErrInvalidName,
	ErrResourceLimit,
	ErrBusy,
	ErrBadHandle,
	ErrUnsupported,
}

// SysError records a failed backend operation together with its portable
// kind and the platform error that caused it.
type SysError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

// NewSysError returns a *SysError. A nil kind is allowed for failures that
// have no portable classification.
func NewSysError(op, path string, kind, err error) *SysError {
	return &SysError{Op: op, Path: path, Kind: kind, Err: err}
}

func (e *SysError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	switch {
	case e.Err != nil:
		return msg + ": " + e.Err.Error()
	case e.Kind != nil:
		return msg + ": " + e.Kind.Error()
	default:
		return msg + ": failed"
	}
}

// Is reports whether target is the kind of this error.
func (e *SysError) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

// Unwrap returns the platform error.
func (e *SysError) Unwrap() error {
	return e.Err
}

// KindOf returns the sentinel kind err matches, or nil when it matches none.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	var se *SysError
	if errors.As(err, &se) && se.Kind != nil {
		return se.Kind
	}
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
