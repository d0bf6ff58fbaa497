package fsio

import (
	"strings"

	"github.com/jmgilman/go/errors"
)

// CreateDirectories creates every missing directory along path, like
// mkdir -p. Existing directories are left alone, so repeating the call
// succeeds. The first failed creation is reported as CodeDirCreate and any
// directories created before it remain.
func (fsys *FS) CreateDirectories(path string) error {
	sep := fsys.sep
	abs := sep.IsAbsolute(path)

	var prefix []string
	for _, c := range sep.Split(path) {
		prefix = append(prefix, c)

		dir := sep.Join(prefix...)
		if abs {
			dir = sep.JoinAbsolute(prefix...)
		}
		if fsys.PathIsDirectory(dir) {
			continue
		}

		if err := fsys.backend.Mkdir(dir, 0o777); err != nil {
			fsys.log.Error("mkdir failed", "path", dir, "error", err)
			return wrapError(err, CodeDirCreate, "create directory", dir)
		}
	}
	return nil
}

// DeleteFile removes a single non-directory entry.
//
// Missing paths fail with CodeNotAFile, and denials (including busy or
// read-only filesystems) with CodeNoPerm. Anything else is CodeFail.
func (fsys *FS) DeleteFile(path string) error {
	if err := fsys.backend.Remove(path); err != nil {
		return fsys.classify("delete file", path, err, deleteCodes)
	}
	return nil
}

// DeleteTree removes path and, when it is a directory, everything below it.
// Links are removed, never followed.
//
// The path is made absolute and canonical first. Children are removed before
// their parent. The first failure stops the deletion and is returned; entries
// removed before it stay removed.
func (fsys *FS) DeleteTree(path string) error {
	if path == "" {
		return newError(CodeParam, "delete tree", path, "empty path")
	}

	abs := fsys.MakeAbsolute(path)
	fsys.log.WithOperation("delete tree").Debug("deleting tree", "path", path, "canonical", abs)
	return fsys.deleteTree(abs)
}

func (fsys *FS) deleteTree(path string) error {
	fi, err := fsys.backend.Lstat(path)
	if err != nil || !fi.IsDir() {
		return fsys.DeleteFile(path)
	}

	names, err := fsys.readNames(path)
	if err != nil {
		return err
	}
	for _, name := range names {
		if isDotEntry(name) {
			continue
		}
		if err := fsys.deleteTree(fsys.child(path, name)); err != nil {
			return err
		}
	}

	if err := fsys.backend.Rmdir(path); err != nil {
		return fsys.classify("remove directory", path, err, deleteCodes)
	}
	return nil
}

// DeleteDirectoryIfEmpty removes dir only when it has no entries. A
// directory with entries fails with CodeNotEmpty and is left untouched.
func (fsys *FS) DeleteDirectoryIfEmpty(dir string) error {
	d, err := fsys.OpenDir(dir)
	if err != nil {
		return err
	}

	for {
		name, err := d.NextName()
		if IsEndOfFile(err) {
			break
		}
		if err != nil {
			_ = d.Close()
			return err
		}
		if isDotEntry(name) {
			continue
		}
		_ = d.Close()
		return errors.WithContext(
			newError(CodeNotEmpty, "delete directory", dir, "directory is not empty"),
			"entry", name,
		)
	}

	if err := d.Close(); err != nil {
		return err
	}
	return fsys.DeleteTree(dir)
}

// child joins a directory and an entry name without doubling the separator
// at the root.
func (fsys *FS) child(dir, name string) string {
	if strings.HasSuffix(dir, fsys.sep.String()) {
		return dir + name
	}
	return fsys.sep.Concat(dir, name)
}
