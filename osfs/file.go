package osfs

import (
	"io/fs"
	"os"

	"github.com/jmgilman/go/fsio/core"
)

// file wraps *os.File and classifies its errors.
type file struct {
	f    *os.File
	name string
}

func (f *file) Read(p []byte) (int, error) {
	n, err := f.f.Read(p)
	if err != nil && !isEOF(err) {
		return n, classify("read", f.name, err)
	}
	return n, err
}

func (f *file) Write(p []byte) (int, error) {
	n, err := f.f.Write(p)
	if err != nil {
		return n, classify("write", f.name, err)
	}
	return n, nil
}

func (f *file) Seek(offset int64, whence int) (int64, error) {
	pos, err := f.f.Seek(offset, whence)
	if err != nil {
		return pos, classify("seek", f.name, err)
	}
	return pos, nil
}

func (f *file) Close() error {
	if err := f.f.Close(); err != nil {
		return classify("close", f.name, err)
	}
	return nil
}

func (f *file) Stat() (fs.FileInfo, error) {
	fi, err := f.f.Stat()
	if err != nil {
		return nil, classify("fstat", f.name, err)
	}
	return fi, nil
}

func (f *file) Name() string {
	return f.name
}

func (f *file) Truncate(size int64) error {
	if err := f.f.Truncate(size); err != nil {
		return classify("truncate", f.name, err)
	}
	return nil
}

func (f *file) Sync() error {
	if err := f.f.Sync(); err != nil {
		return classify("sync", f.name, err)
	}
	return nil
}

// Compile-time interface checks.
var (
	_ core.File      = (*file)(nil)
	_ core.Truncater = (*file)(nil)
	_ core.Syncer    = (*file)(nil)
)
