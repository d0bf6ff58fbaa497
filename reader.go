package fsio

import (
	"io"
	"os"
)

// Reader is a read-only file handle. The zero value is a closed handle.
//
// A Reader is owned by one goroutine at a time.
type Reader struct {
	handle
}

// OpenRead opens name for reading. Any failure is reported as CodeFileOpen.
func (fsys *FS) OpenRead(name string) (*Reader, error) {
	f, err := fsys.backend.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		return nil, wrapError(err, CodeFileOpen, "open", name)
	}
	return &Reader{newHandle(fsys, f, name)}, nil
}

// Read reads up to len(p) bytes. It returns io.EOF, and no data, once the
// end of the file is reached. A closed handle fails with CodeFileOpen and a
// backend failure with CodeReadFail.
func (r *Reader) Read(p []byte) (int, error) {
	if r.file == nil {
		return 0, newError(CodeFileOpen, "read", r.name, "handle is not open")
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := r.file.Read(p)
	if n > 0 {
		return n, nil
	}
	if err == nil || err == io.EOF {
		return 0, io.EOF
	}

	r.log.Error("read failed", "error", err)
	return 0, wrapError(err, CodeReadFail, "read", r.name)
}

var _ io.ReadSeekCloser = (*Reader)(nil)
