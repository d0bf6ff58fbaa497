package osfs

import (
	"io/fs"
	"os"

	"github.com/jmgilman/go/fsio/core"
	"github.com/jmgilman/go/fsio/fspath"
)

// dirBatch is the number of entries read from the OS per directory batch.
const dirBatch = 64

// FS is the host operating system backend.
type FS struct{}

// New returns the operating system backend.
func New() *FS {
	return &FS{}
}

// OpenFile opens name with os.OpenFile.
func (fsys *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, classify("open", name, err)
	}
	return &file{f: f, name: name}, nil
}

// Stat returns file metadata, following symbolic links.
func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, classify("stat", name, err)
	}
	return fi, nil
}

// Lstat returns file metadata without following a final symbolic link.
func (fsys *FS) Lstat(name string) (fs.FileInfo, error) {
	fi, err := os.Lstat(name)
	if err != nil {
		return nil, classify("lstat", name, err)
	}
	return fi, nil
}

// Mkdir creates a single directory.
func (fsys *FS) Mkdir(name string, perm fs.FileMode) error {
	if err := os.Mkdir(name, perm); err != nil {
		return classify("mkdir", name, err)
	}
	return nil
}

// Remove unlinks a non-directory entry.
func (fsys *FS) Remove(name string) error {
	return unlink(name)
}

// Rmdir removes an empty directory.
func (fsys *FS) Rmdir(name string) error {
	return rmdir(name)
}

// Symlink creates newname as a symbolic link to oldname.
func (fsys *FS) Symlink(oldname, newname string) error {
	if err := os.Symlink(oldname, newname); err != nil {
		return classify("symlink", newname, err)
	}
	return nil
}

// OpenDir opens a directory stream on name.
func (fsys *FS) OpenDir(name string) (core.DirStream, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, classify("opendir", name, err)
	}

	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, classify("opendir", name, err)
	}
	if !fi.IsDir() {
		_ = f.Close()
		return nil, core.NewSysError("opendir", name, core.ErrNotDir, nil)
	}

	return &dirStream{f: f, name: name}, nil
}

// Getwd returns the process working directory.
func (fsys *FS) Getwd() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", classify("getwd", "", err)
	}
	return wd, nil
}

// Separator returns the host path separator.
func (fsys *FS) Separator() fspath.Separator {
	return fspath.Default
}

// Type returns FSTypeLocal.
func (fsys *FS) Type() core.FSType {
	return core.FSTypeLocal
}

// Classify wraps a host error in a *core.SysError carrying its portable
// kind. Backends layered over the host filesystem use it to report errors
// the same way this one does.
func Classify(op, path string, err error) error {
	return classify(op, path, err)
}

// Compile-time interface checks.
var (
	_ core.FS            = (*FS)(nil)
	_ core.Linker        = (*FS)(nil)
	_ core.SpaceReporter = (*FS)(nil)
)
