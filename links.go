package fsio

import (
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio/core"
)

// MaxLinkHops bounds the number of symbolic links ResolveLinks follows for
// one path. It matches the Linux MAXSYMLINKS value.
const MaxLinkHops = 40

// ResolveLinks returns the absolute canonical form of path with every
// symbolic link, at any component, replaced by its target.
//
// Relative link targets are resolved against the directory holding the link.
// A component that cannot be read fails with CodeNotAFile or CodeNoPerm, and
// a chain longer than MaxLinkHops fails with CodeParam. Backends without
// core.LinkReader have no links, so the result is the absolute canonical
// path.
func (fsys *FS) ResolveLinks(path string) (string, error) {
	sep := fsys.sep
	in := sep.Split(fsys.MakeAbsolute(path))

	lr, ok := fsys.backend.(core.LinkReader)
	if !ok {
		return sep.JoinAbsolute(in...), nil
	}

	// Components still to resolve. A link's target is pushed back in front
	// of the remaining input so links inside the target are resolved too.
	pending := in
	out := make([]string, 0, len(in))
	hops := 0
	for len(pending) > 0 {
		out = append(out, pending[0])
		pending = pending[1:]

		next := sep.JoinAbsolute(out...)
		target, err := lr.Readlink(next)
		if errors.Is(err, core.ErrNotLink) {
			continue
		}
		if err != nil {
			return "", fsys.classify("readlink", next, err, linkCodes)
		}

		hops++
		if hops > MaxLinkHops {
			fsys.log.Error("too many levels of symbolic links", "path", path, "hops", hops)
			return "", errors.WithContext(
				newError(CodeParam, "resolve links", path, "too many levels of symbolic links"),
				"limit", MaxLinkHops,
			)
		}

		if !sep.IsAbsolute(target) {
			target = sep.Concat(sep.Dirname(next), target)
		}
		pending = append(sep.Split(sep.Canonical(target)), pending...)
		out = out[:0]
	}

	return sep.JoinAbsolute(out...), nil
}
