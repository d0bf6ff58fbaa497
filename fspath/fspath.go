// Package fspath implements lexical path manipulation with a configurable
// separator.
//
// Every function operates on strings only and never touches the filesystem,
// with the exception of MakeAbsolute and PathsAreEquivalent which consult the
// process working directory. A path is absolute when its first byte is the
// separator. Empty components are discarded when a path is split, so
// "/a//b/" and "/a/b" have the same components.
package fspath

import (
	"os"
	"strings"
)

// Separator is the byte that delimits path components.
type Separator byte

const (
	// Slash is the POSIX separator.
	Slash Separator = '/'
	// Backslash is the Windows separator.
	Backslash Separator = '\\'
	// Default is the separator of the host platform.
	Default Separator = os.PathSeparator
)

// String returns the separator as a one byte string.
func (s Separator) String() string {
	return string([]byte{byte(s)})
}

// Split returns the non-empty components of path.
func (s Separator) Split(path string) []string {
	parts := strings.Split(path, s.String())
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join joins components into a relative path. It is the inverse of Split for
// relative paths.
func (s Separator) Join(components ...string) string {
	return strings.Join(components, s.String())
}

// JoinAbsolute joins components into an absolute path. An empty list yields
// the separator alone, which denotes the root.
func (s Separator) JoinAbsolute(components ...string) string {
	if len(components) == 0 {
		return s.String()
	}

	var b strings.Builder
	for _, c := range components {
		b.WriteByte(byte(s))
		b.WriteString(c)
	}
	return b.String()
}

// Concat joins segments with the separator without any normalization.
func (s Separator) Concat(segments ...string) string {
	return strings.Join(segments, s.String())
}

// IsAbsolute reports whether path begins with the separator.
func (s Separator) IsAbsolute(path string) bool {
	return path != "" && path[0] == byte(s)
}

// HasComponents reports whether path contains the separator at all.
func (s Separator) HasComponents(path string) bool {
	return strings.IndexByte(path, byte(s)) >= 0
}

func canonicalList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		switch c {
		case "..":
			if len(out) > 0 {
				out = out[:len(out)-1]
			}
		case ".":
		default:
			out = append(out, c)
		}
	}
	return out
}

// Canonical removes "." components and resolves ".." components lexically.
// A ".." with nothing left to pop is dropped, so the result never climbs
// above the root and a relative path made only of ".." becomes "".
// Canonical is idempotent.
func (s Separator) Canonical(path string) string {
	out := canonicalList(s.Split(path))
	if s.IsAbsolute(path) {
		return s.JoinAbsolute(out...)
	}
	return s.Join(out...)
}

// Absolute returns the canonical absolute form of path, interpreting a
// relative path against cwd. The empty path is the root.
func (s Separator) Absolute(path, cwd string) string {
	if path == "" {
		return s.String()
	}
	if s.IsAbsolute(path) {
		return s.Canonical(path)
	}
	return s.JoinAbsolute(canonicalList(s.Split(s.Concat(cwd, path)))...)
}

// Equivalent reports whether a and b name the same location after both are
// made absolute against cwd. The comparison is lexical.
func (s Separator) Equivalent(a, b, cwd string) bool {
	return s.Absolute(a, cwd) == s.Absolute(b, cwd)
}

// MakeLocal strips a leading "parent" plus separator from path. Paths that do
// not start with parent are returned unchanged.
func (s Separator) MakeLocal(path, parent string) string {
	prefix := parent
	if !strings.HasSuffix(prefix, s.String()) {
		prefix += s.String()
	}
	if strings.HasPrefix(path, prefix) {
		return path[len(prefix):]
	}
	return path
}

// Basename returns the last component of path, or "" when there is none.
func (s Separator) Basename(path string) string {
	c := s.Split(path)
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1]
}

// Dirname returns path without its last component. The dirname of a path with
// no components is the root for absolute paths and "" otherwise.
func (s Separator) Dirname(path string) string {
	c := s.Split(path)
	abs := s.IsAbsolute(path)
	if len(c) > 0 {
		c = c[:len(c)-1]
	}
	if abs {
		return s.JoinAbsolute(c...)
	}
	return s.Join(c...)
}

// Extension returns the text after the last '.' of the final component.
func (s Separator) Extension(path string) string {
	base := s.Basename(path)
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i+1:]
}

// SetExtension returns the final component of path with its extension
// replaced by ext, or removed when ext is empty. The directory part is not
// included in the result.
func (s Separator) SetExtension(path, ext string) string {
	base := s.Basename(path)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// Split splits path using the Default separator.
func Split(path string) []string { return Default.Split(path) }

// Join joins components into a relative path using the Default separator.
func Join(components ...string) string { return Default.Join(components...) }

// JoinAbsolute joins components into an absolute path using the Default separator.
func JoinAbsolute(components ...string) string { return Default.JoinAbsolute(components...) }

// Concat joins segments using the Default separator.
func Concat(segments ...string) string { return Default.Concat(segments...) }

// Canonical canonicalizes path using the Default separator.
func Canonical(path string) string { return Default.Canonical(path) }

// IsAbsolute reports whether path is absolute under the Default separator.
func IsAbsolute(path string) bool { return Default.IsAbsolute(path) }

// HasComponents reports whether path contains the Default separator.
func HasComponents(path string) bool { return Default.HasComponents(path) }

// MakeLocal strips parent from path using the Default separator.
func MakeLocal(path, parent string) string { return Default.MakeLocal(path, parent) }

// Basename returns the last component of path.
func Basename(path string) string { return Default.Basename(path) }

// Dirname returns path without its last component.
func Dirname(path string) string { return Default.Dirname(path) }

// Extension returns the extension of the final component of path.
func Extension(path string) string { return Default.Extension(path) }

// SetExtension replaces or strips the extension of path.
func SetExtension(path, ext string) string { return Default.SetExtension(path, ext) }

// Cwd returns the process working directory, or "" when it cannot be
// determined.
func Cwd() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// MakeAbsolute returns the canonical absolute form of path relative to the
// process working directory.
func MakeAbsolute(path string) string {
	return Default.Absolute(path, Cwd())
}

// PathsAreEquivalent reports whether a and b have the same canonical
// absolute form relative to the process working directory.
func PathsAreEquivalent(a, b string) bool {
	return MakeAbsolute(a) == MakeAbsolute(b)
}
