package osfs

import (
	"io"
	"io/fs"
	"os"

	"github.com/jmgilman/go/fsio/core"
)

// dirStream reads a directory in batches, in the order the OS returns
// entries.
type dirStream struct {
	f    *os.File
	name string
	buf  []fs.DirEntry
	done bool
}

func (d *dirStream) Next() (core.DirEntry, error) {
	for len(d.buf) == 0 {
		if d.done {
			return core.DirEntry{}, io.EOF
		}
		entries, err := d.f.ReadDir(dirBatch)
		if err != nil {
			if isEOF(err) {
				d.done = true
				continue
			}
			return core.DirEntry{}, classify("readdir", d.name, err)
		}
		d.buf = entries
	}

	e := d.buf[0]
	d.buf = d.buf[1:]
	return core.DirEntry{Name: e.Name(), Type: core.EntryTypeFromMode(e.Type())}, nil
}

func (d *dirStream) Close() error {
	d.buf = nil
	if err := d.f.Close(); err != nil {
		return classify("closedir", d.name, err)
	}
	return nil
}

func isEOF(err error) bool {
	return err == io.EOF
}
