package billyfs

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/fsio/core"
	"github.com/jmgilman/go/fsio/fspath"
	fsioos "github.com/jmgilman/go/fsio/osfs"
)

// FS adapts a billy.Filesystem to core.FS.
type FS struct {
	bfs    billy.Filesystem
	fsType core.FSType
}

// New wraps an arbitrary billy.Filesystem.
func New(bfs billy.Filesystem, fsType core.FSType) *FS {
	return &FS{bfs: bfs, fsType: fsType}
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory() *FS {
	return New(memfs.New(), core.FSTypeMemory)
}

// NewLocal creates a go-billy-backed local filesystem bound to root. Every
// path, absolute or relative, is resolved under root.
func NewLocal(root string) *FS {
	return New(osfs.New(root, osfs.WithBoundOS()), core.FSTypeLocal)
}

// Unwrap returns the underlying billy.Filesystem for go-git integration.
func (b *FS) Unwrap() billy.Filesystem {
	return b.bfs
}

// Chroot returns a filesystem scoped to the given directory.
func (b *FS) Chroot(dir string) (*FS, error) {
	dir = normalize(dir)
	fi, err := b.bfs.Stat(dir)
	if err != nil {
		return nil, b.wrap("chroot", dir, err)
	}
	if !fi.IsDir() {
		return nil, core.NewSysError("chroot", dir, core.ErrNotDir, nil)
	}
	chrootFS, err := b.bfs.Chroot(dir)
	if err != nil {
		return nil, b.wrap("chroot", dir, err)
	}
	return New(chrootFS, b.fsType), nil
}

// normalize converts paths to forward slashes relative to the billy root.
// BoundOS resolves absolute paths against the host in Lstat and Readlink but
// against its base directory elsewhere, so every call gets a relative path.
func normalize(name string) string {
	p := strings.TrimLeft(filepath.ToSlash(filepath.Clean(name)), "/")
	if p == "" {
		return "."
	}
	return p
}

// wrap attaches a portable kind to an error returned by billy.
func (b *FS) wrap(op, name string, err error) error {
	if err == nil {
		return nil
	}
	var se *core.SysError
	if errors.As(err, &se) {
		return err
	}
	if b.fsType == core.FSTypeLocal {
		return fsioos.Classify(op, name, err)
	}
	return core.NewSysError(op, name, core.KindOf(err), err)
}

// parentDir verifies that the parent of name is an existing directory.
func (b *FS) parentDir(op, name string) error {
	parent := path.Dir(name)
	if parent == "." || parent == name {
		return nil
	}
	fi, err := b.bfs.Stat(parent)
	if err != nil {
		return b.wrap(op, name, err)
	}
	if !fi.IsDir() {
		return core.NewSysError(op, name, core.ErrNotDir, nil)
	}
	return nil
}

// OpenFile opens a file with the specified flags and permissions.
func (b *FS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	display := name
	name = normalize(name)

	fi, err := b.bfs.Stat(name)
	switch {
	case err == nil && fi.IsDir():
		return nil, core.NewSysError("open", name, core.ErrIsDir, nil)
	case err != nil && errors.Is(err, fs.ErrNotExist) && flag&os.O_CREATE != 0:
		// billy creates missing parents on demand; a real open does not.
		if perr := b.parentDir("open", name); perr != nil {
			return nil, perr
		}
	}

	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, b.wrap("open", name, err)
	}
	return &File{file: f, fs: b, name: display}, nil
}

// Stat returns file metadata for the named file.
func (b *FS) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	fi, err := b.bfs.Stat(name)
	if err != nil {
		return nil, b.wrap("stat", name, err)
	}
	return fi, nil
}

// Lstat returns file metadata without following a final symbolic link.
func (b *FS) Lstat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	fi, err := b.bfs.Lstat(name)
	if err != nil {
		return nil, b.wrap("lstat", name, err)
	}
	return fi, nil
}

// Mkdir creates a new directory with the specified name and permission bits.
// Unlike MkdirAll, this will fail if the parent directory does not exist.
func (b *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := b.bfs.Lstat(name); err == nil {
		return core.NewSysError("mkdir", name, core.ErrExist, nil)
	}
	if err := b.parentDir("mkdir", name); err != nil {
		return err
	}
	// The parent exists, so MkdirAll creates exactly one directory.
	if err := b.bfs.MkdirAll(name, perm); err != nil {
		return b.wrap("mkdir", name, err)
	}
	return nil
}

// Remove unlinks a non-directory entry.
func (b *FS) Remove(name string) error {
	name = normalize(name)
	fi, err := b.bfs.Lstat(name)
	if err != nil {
		return b.wrap("unlink", name, err)
	}
	if fi.IsDir() {
		return core.NewSysError("unlink", name, core.ErrIsDir, nil)
	}
	if err := b.bfs.Remove(name); err != nil {
		return b.wrap("unlink", name, err)
	}
	return nil
}

// Rmdir removes an empty directory.
func (b *FS) Rmdir(name string) error {
	name = normalize(name)
	fi, err := b.bfs.Lstat(name)
	if err != nil {
		return b.wrap("rmdir", name, err)
	}
	if !fi.IsDir() {
		return core.NewSysError("rmdir", name, core.ErrNotDir, nil)
	}
	entries, err := b.bfs.ReadDir(name)
	if err != nil {
		return b.wrap("rmdir", name, err)
	}
	if len(entries) > 0 {
		return core.NewSysError("rmdir", name, core.ErrNotEmpty, nil)
	}
	if err := b.bfs.Remove(name); err != nil {
		return b.wrap("rmdir", name, err)
	}
	return nil
}

// OpenDir snapshots the entries of a directory. billy returns them sorted by
// name.
func (b *FS) OpenDir(name string) (core.DirStream, error) {
	name = normalize(name)
	fi, err := b.bfs.Stat(name)
	if err != nil {
		return nil, b.wrap("opendir", name, err)
	}
	if !fi.IsDir() {
		return nil, core.NewSysError("opendir", name, core.ErrNotDir, nil)
	}

	infos, err := b.bfs.ReadDir(name)
	if err != nil {
		return nil, b.wrap("opendir", name, err)
	}
	entries := make([]core.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = core.DirEntry{Name: info.Name(), Type: core.EntryTypeFromMode(info.Mode())}
	}
	return &dirStream{name: name, entries: entries}, nil
}

// Readlink returns the destination of the named symbolic link.
func (b *FS) Readlink(name string) (string, error) {
	name = normalize(name)
	fi, err := b.bfs.Lstat(name)
	if err != nil {
		return "", b.wrap("readlink", name, err)
	}
	if fi.Mode()&fs.ModeSymlink == 0 {
		return "", core.NewSysError("readlink", name, core.ErrNotLink, nil)
	}
	target, err := b.bfs.Readlink(name)
	if err != nil {
		return "", b.wrap("readlink", name, err)
	}
	return target, nil
}

// Symlink creates newname as a symbolic link to oldname.
func (b *FS) Symlink(oldname, newname string) error {
	newname = normalize(newname)
	if _, err := b.bfs.Lstat(newname); err == nil {
		return core.NewSysError("symlink", newname, core.ErrExist, nil)
	}
	if err := b.parentDir("symlink", newname); err != nil {
		return err
	}
	if err := b.bfs.Symlink(oldname, newname); err != nil {
		return b.wrap("symlink", newname, err)
	}
	return nil
}

// Getwd returns the root of the billy filesystem.
func (b *FS) Getwd() (string, error) {
	return b.Separator().String(), nil
}

// Separator returns the separator billy uses on this platform.
func (b *FS) Separator() fspath.Separator {
	return fspath.Separator(filepath.Separator)
}

// Type returns the filesystem type given at construction.
func (b *FS) Type() core.FSType {
	return b.fsType
}

// Compile-time interface checks.
var (
	_ core.FS         = (*FS)(nil)
	_ core.LinkReader = (*FS)(nil)
	_ core.Linker     = (*FS)(nil)
)
