package billyfs

import (
	"errors"
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"

	"github.com/jmgilman/go/fsio/core"
)

var errNegativeOffset = errors.New("negative offset")

// File wraps billy.File to implement core.File.
// It stores the filename since billy.File.Name() may return different formats
// depending on the backend implementation.
// It also stores a reference to the filesystem to support Stat() calls and
// error classification.
type File struct {
	file billy.File
	fs   *FS
	name string
}

// Read implements io.Reader. End of data is reported as a bare io.EOF.
func (f *File) Read(p []byte) (int, error) {
	n, err := f.file.Read(p)
	if err != nil && err != io.EOF {
		return n, f.fs.wrap("read", f.name, err)
	}
	return n, err
}

// Write implements io.Writer.
func (f *File) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if err != nil {
		return n, f.fs.wrap("write", f.name, err)
	}
	return n, nil
}

// Close implements io.Closer.
func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return f.fs.wrap("close", f.name, err)
	}
	return nil
}

// Stat returns metadata for the open file.
// Since billy.File doesn't provide Stat(), we call the filesystem's Stat() method.
func (f *File) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name provided to OpenFile.
func (f *File) Name() string {
	return f.name
}

// Seek implements io.Seeker. memfs accepts negative positions, so they are
// rejected here and the previous position is restored.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	prev, err := f.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, f.fs.wrap("seek", f.name, err)
	}
	pos, err := f.file.Seek(offset, whence)
	if err != nil {
		return pos, f.fs.wrap("seek", f.name, err)
	}
	if pos < 0 {
		_, _ = f.file.Seek(prev, io.SeekStart)
		return prev, core.NewSysError("seek", f.name, nil, errNegativeOffset)
	}
	return pos, nil
}

// Truncate implements core.Truncater.
func (f *File) Truncate(size int64) error {
	if err := f.file.Truncate(size); err != nil {
		return f.fs.wrap("truncate", f.name, err)
	}
	return nil
}

// Sync implements core.Syncer.
// Billy.File may or may not provide Sync depending on the backend.
// For backends without Sync (e.g., memfs), this is a no-op.
func (f *File) Sync() error {
	if syncer, ok := f.file.(interface{ Sync() error }); ok {
		if err := syncer.Sync(); err != nil {
			return f.fs.wrap("sync", f.name, err)
		}
	}
	return nil
}

// dirStream serves a snapshot of directory entries.
type dirStream struct {
	name    string
	entries []core.DirEntry
	closed  bool
}

func (d *dirStream) Next() (core.DirEntry, error) {
	if d.closed {
		return core.DirEntry{}, core.NewSysError("readdir", d.name, core.ErrClosed, nil)
	}
	if len(d.entries) == 0 {
		return core.DirEntry{}, io.EOF
	}
	e := d.entries[0]
	d.entries = d.entries[1:]
	return e, nil
}

func (d *dirStream) Close() error {
	if d.closed {
		return core.NewSysError("closedir", d.name, core.ErrClosed, nil)
	}
	d.closed = true
	d.entries = nil
	return nil
}

// Compile-time interface checks.
var (
	_ core.File      = (*File)(nil)
	_ io.Seeker      = (*File)(nil)
	_ core.Truncater = (*File)(nil)
	_ core.Syncer    = (*File)(nil)
	_ core.DirStream = (*dirStream)(nil)
)
