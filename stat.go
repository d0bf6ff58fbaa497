package fsio

import (
	"github.com/jmgilman/go/fsio/core"
)

// PathExists reports whether path can be stat'ed.
func (fsys *FS) PathExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := fsys.backend.Stat(path)
	return err == nil
}

// PathIsFile reports whether path is a regular file, following links.
func (fsys *FS) PathIsFile(path string) bool {
	if path == "" {
		return false
	}
	fi, err := fsys.backend.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// PathIsDirectory reports whether path is a directory, following links.
func (fsys *FS) PathIsDirectory(path string) bool {
	if path == "" {
		return false
	}
	fi, err := fsys.backend.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// FileSize returns the size of a regular file. Anything else, including a
// missing path, has size 0.
func (fsys *FS) FileSize(path string) uint64 {
	if path == "" {
		return 0
	}
	fi, err := fsys.backend.Stat(path)
	if err != nil {
		return 0
	}
	return sizeOf(fi)
}

// FreeSpaceForPath reports the bytes available to the caller and the total
// capacity of the filesystem holding path.
//
// Missing paths fail with CodeNotAFile and permission denials with
// CodeNoPerm. A backend that cannot report space, or that reports no blocks,
// fails with CodeFail.
func (fsys *FS) FreeSpaceForPath(path string) (free, total uint64, err error) {
	sr, ok := fsys.backend.(core.SpaceReporter)
	if !ok {
		fsys.log.Error("disk space query unsupported", "path", path, "backend", fsys.backend.Type().String())
		return 0, 0, newError(CodeFail, "statfs", path, "backend cannot report disk space")
	}

	sp, err := sr.Statfs(path)
	if err != nil {
		return 0, 0, fsys.classify("statfs", path, err, pathCodes)
	}
	if sp.Blocks == 0 {
		fsys.log.Error("filesystem reports no blocks", "path", path)
		return 0, 0, newError(CodeFail, "statfs", path, "filesystem reports no blocks")
	}
	return sp.Free, sp.Total, nil
}

// Cwd returns the backend's working directory, or "" when it is unknown.
func (fsys *FS) Cwd() string {
	wd, err := fsys.backend.Getwd()
	if err != nil {
		fsys.log.Warn("getwd failed", "error", err)
		return ""
	}
	return wd
}

// MakeAbsolute returns the canonical absolute form of path, resolving a
// relative path against Cwd. The empty path is the root.
func (fsys *FS) MakeAbsolute(path string) string {
	if path == "" || fsys.sep.IsAbsolute(path) {
		return fsys.sep.Absolute(path, "")
	}
	return fsys.sep.Absolute(path, fsys.Cwd())
}

// PathsAreEquivalent reports whether a and b have the same absolute
// canonical form. The comparison is lexical; links are not resolved.
func (fsys *FS) PathsAreEquivalent(a, b string) bool {
	return fsys.MakeAbsolute(a) == fsys.MakeAbsolute(b)
}
