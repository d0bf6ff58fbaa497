package fsio

import (
	"io"
	"io/fs"

	"github.com/jmgilman/go/fsio/core"
	"github.com/jmgilman/go/fsio/logging"
)

// handle is the state shared by Reader and Writer. A nil file is the closed
// state. The logger carries the path of the handle.
type handle struct {
	log  *logging.Logger
	file core.File
	name string
}

func newHandle(fsys *FS, f core.File, name string) handle {
	return handle{log: fsys.log.WithPath(name), file: f, name: name}
}

// Name returns the path the handle was opened with.
func (h *handle) Name() string {
	return h.name
}

// IsOpen reports whether the handle is usable.
func (h *handle) IsOpen() bool {
	return h.file != nil
}

// Seek sets the offset for the next read or write. It fails with
// CodeFileOpen on a closed handle and CodeBadSeek when the backend rejects the
// position.
func (h *handle) Seek(offset int64, whence int) (int64, error) {
	if h.file == nil {
		return 0, newError(CodeFileOpen, "seek", h.name, "handle is not open")
	}
	pos, err := h.file.Seek(offset, whence)
	if err != nil {
		return 0, wrapError(err, CodeBadSeek, "seek", h.name)
	}
	return pos, nil
}

// Tell returns the current offset.
func (h *handle) Tell() (int64, error) {
	if h.file == nil {
		return 0, newError(CodeFileOpen, "tell", h.name, "handle is not open")
	}
	pos, err := h.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, wrapError(err, CodeReadFail, "tell", h.name)
	}
	return pos, nil
}

// Size returns the size of the open file. It is 0 for a closed handle and
// for anything that is not a regular file or link.
func (h *handle) Size() uint64 {
	if h.file == nil {
		return 0
	}
	fi, err := h.file.Stat()
	if err != nil {
		return 0
	}
	return sizeOf(fi)
}

// Close releases the handle. Closing a closed handle fails with
// CodeFileOpen. The handle is closed afterwards even when the backend
// reports an error.
func (h *handle) Close() error {
	if h.file == nil {
		return newError(CodeFileOpen, "close", h.name, "handle is not open")
	}
	f := h.file
	h.file = nil
	if err := f.Close(); err != nil {
		h.log.Error("close failed", "error", err)
		return wrapError(err, CodeFail, "close", h.name)
	}
	return nil
}

// sizeOf returns the size recorded in fi for regular files and links.
func sizeOf(fi fs.FileInfo) uint64 {
	mode := fi.Mode()
	if !mode.IsRegular() && mode&fs.ModeSymlink == 0 {
		return 0
	}
	if fi.Size() < 0 {
		return 0
	}
	return uint64(fi.Size())
}
