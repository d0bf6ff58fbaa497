package core

import (
	"io"
	"io/fs"

	"github.com/jmgilman/go/fsio/fspath"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a local filesystem (e.g., disk-backed).
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the set of primitive operations every backend provides.
//
// Paths are passed through exactly as the caller gave them; a backend
// resolves relative paths against its own working directory (see Getwd).
type FS interface {
	// OpenFile opens a file with the given flags (os.O_RDONLY, os.O_RDWR,
	// os.O_CREATE, os.O_TRUNC, ...). The permission bits are used when the
	// file is created.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// Stat returns file metadata, following symbolic links.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns file metadata without following a final symbolic link.
	Lstat(name string) (fs.FileInfo, error)

	// Mkdir creates a single directory. It fails with ErrExist when the name
	// is taken and ErrNotExist when the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// Remove unlinks a non-directory entry. Directories fail with ErrIsDir
	// or ErrPermission depending on the platform.
	Remove(name string) error

	// Rmdir removes an empty directory.
	Rmdir(name string) error

	// OpenDir opens a directory stream. Entries are produced in the order
	// the backend stores them.
	OpenDir(name string) (DirStream, error)

	// Getwd returns the directory relative paths are resolved against.
	Getwd() (string, error)

	// Separator returns the path separator the backend expects.
	Separator() fspath.Separator

	// Type returns the underlying filesystem type.
	Type() FSType
}

// File represents an open file handle.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Stat returns metadata for the open file.
	Stat() (fs.FileInfo, error)

	// Name returns the name of the file as provided to OpenFile.
	Name() string
}

// VectorWriter writes several buffers with one gather call.
//
// The returned count is the total number of bytes the operating system
// accepted, which may be less than the sum of the buffer lengths.
type VectorWriter interface {
	Writev(bufs [][]byte) (int, error)
}

// Truncater allows truncating a file to a specified size.
type Truncater interface {
	// Truncate changes the size of the file.
	// It does not change the I/O offset.
	Truncate(size int64) error
}

// Syncer allows syncing file contents to stable storage.
type Syncer interface {
	// Sync commits the current contents of the file to stable storage.
	Sync() error
}

// LinkReader reads symbolic link targets.
type LinkReader interface {
	// Readlink returns the destination of the named symbolic link.
	// A name that exists but is not a link fails with ErrNotLink.
	Readlink(name string) (string, error)
}

// Linker creates symbolic links.
type Linker interface {
	// Symlink creates newname as a symbolic link to oldname. The target is
	// stored as given.
	Symlink(oldname, newname string) error
}

// Space describes the capacity of the filesystem holding a path.
type Space struct {
	// Free is the number of bytes available to an unprivileged caller.
	Free uint64
	// Total is the size of the filesystem in bytes.
	Total uint64
	// Blocks is the raw block count reported by the platform. Zero means
	// the platform returned an implausible answer.
	Blocks uint64
}

// SpaceReporter reports filesystem capacity.
type SpaceReporter interface {
	Statfs(name string) (Space, error)
}

// DirStream is an open directory.
type DirStream interface {
	// Next returns the next entry. It returns io.EOF once the directory is
	// exhausted. The "." and ".." entries are never produced.
	Next() (DirEntry, error)

	// Close releases the stream.
	Close() error
}
