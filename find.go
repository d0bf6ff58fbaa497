package fsio

import (
	"strings"

	"github.com/jmgilman/go/fsio/match"
)

// FindInPath searches dir recursively for non-directory entries whose name
// satisfies m and returns their paths as dir + separator + name. A dir that
// already ends in the separator, such as the root, is not given a second one.
//
// Hidden entries (names starting with '.') are skipped, including hidden
// directories. Directories that cannot be read are skipped. With oneShot the
// search stops at the first match.
func (fsys *FS) FindInPath(m match.Matcher, dir string, oneShot bool) []string {
	var found []string
	fsys.findInPath(m, dir, oneShot, &found)
	return found
}

// FindInPaths runs FindInPath on each directory in order and concatenates the
// results. With oneShot the search stops at the first match across all
// directories.
func (fsys *FS) FindInPaths(m match.Matcher, dirs []string, oneShot bool) []string {
	var found []string
	for _, dir := range dirs {
		if fsys.findInPath(m, dir, oneShot, &found) {
			break
		}
	}
	return found
}

// findInPath appends matches under dir to found. It reports whether a
// one-shot search is complete.
func (fsys *FS) findInPath(m match.Matcher, dir string, oneShot bool, found *[]string) bool {
	names, err := fsys.readNames(dir)
	if err != nil {
		fsys.log.WithOperation("find").Debug("skipping unreadable directory", "path", dir, "error", err)
		return false
	}

	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := fsys.child(dir, name)
		if fsys.PathIsDirectory(path) {
			if fsys.findInPath(m, path, oneShot, found) {
				return true
			}
			continue
		}

		if m.Match(name) {
			*found = append(*found, path)
			if oneShot {
				return true
			}
		}
	}
	return false
}
