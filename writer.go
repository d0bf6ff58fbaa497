package fsio

import (
	"io"
	"io/fs"
	"os"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio/core"
)

// MaxQueuedWrites is the capacity of a Writer's pending write list.
const MaxQueuedWrites = 32

// Writer is a read/write file handle with a bounded queue of buffers that
// are written together by Flush. It reads like a Reader. The zero value is a
// closed handle.
//
// A Writer is owned by one goroutine at a time.
type Writer struct {
	Reader
	queue [][]byte
}

// OpenWrite opens name for writing, truncating it or creating it with mode
// 0666 (before umask). Any failure is reported as CodeFileOpen.
func (fsys *FS) OpenWrite(name string) (*Writer, error) {
	return fsys.openWriter(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC)
}

// OpenModify opens name for reading and writing without truncating it. The
// file is created if absent and existing content can be read back through
// the returned Writer.
func (fsys *FS) OpenModify(name string) (*Writer, error) {
	return fsys.openWriter(name, os.O_RDWR|os.O_CREATE)
}

func (fsys *FS) openWriter(name string, flag int) (*Writer, error) {
	f, err := fsys.backend.OpenFile(name, flag, fs.FileMode(0o666))
	if err != nil {
		fsys.log.Error("open for writing failed", "path", name, "error", err)
		return nil, wrapError(err, CodeFileOpen, "open", name)
	}
	return &Writer{Reader: Reader{newHandle(fsys, f, name)}}, nil
}

// Write writes all of p. A closed handle fails with CodeInvalidState. A
// backend failure or a short write fails with CodeWriteFail; the returned
// count is what the backend accepted.
func (w *Writer) Write(p []byte) (int, error) {
	if w.file == nil {
		return 0, newError(CodeInvalidState, "write", w.name, "handle is not open")
	}

	n, err := w.file.Write(p)
	if err != nil {
		w.log.Error("write failed", "error", err)
		return n, errors.WithContextMap(wrapError(err, CodeWriteFail, "write", w.name), map[string]interface{}{
			"requested": len(p),
			"written":   n,
		})
	}
	if n != len(p) {
		return n, shortWrite("write", w.name, len(p), n)
	}
	return n, nil
}

// Queue appends p to the pending write list. The buffer is referenced, not
// copied, and must not change until Flush returns. Queueing onto a full list
// fails with CodeWriteFail.
func (w *Writer) Queue(p []byte) error {
	if len(w.queue) >= MaxQueuedWrites {
		w.log.Error("write queue is full", "capacity", MaxQueuedWrites)
		return errors.WithContext(
			newError(CodeWriteFail, "queue", w.name, "write queue is full"),
			"capacity", MaxQueuedWrites,
		)
	}
	w.queue = append(w.queue, p)
	return nil
}

// Pending returns the number of queued buffers.
func (w *Writer) Pending() int {
	return len(w.queue)
}

// Flush writes every queued buffer. Backends that implement
// core.VectorWriter receive a single gather write; others get one Write per
// buffer, stopping at the first failure. Any count other than the queued
// total fails with CodeWriteFail.
//
// The queue is empty when Flush returns, whatever the outcome.
func (w *Writer) Flush() (int, error) {
	defer w.drain()

	if w.file == nil {
		return 0, newError(CodeInvalidState, "flush", w.name, "handle is not open")
	}
	if len(w.queue) == 0 {
		return 0, nil
	}

	total := 0
	for _, b := range w.queue {
		total += len(b)
	}

	if vw, ok := w.file.(core.VectorWriter); ok {
		n, err := vw.Writev(w.queue)
		if err != nil {
			w.log.Error("vectored write failed", "error", err)
			return n, wrapError(err, CodeWriteFail, "flush", w.name)
		}
		if n != total {
			return n, shortWrite("flush", w.name, total, n)
		}
		return n, nil
	}

	written := 0
	for _, b := range w.queue {
		n, err := w.file.Write(b)
		written += n
		if err != nil {
			w.log.Error("write failed", "error", err)
			return written, wrapError(err, CodeWriteFail, "flush", w.name)
		}
		if n != len(b) {
			return written, shortWrite("flush", w.name, total, written)
		}
	}
	return written, nil
}

// Sync commits the file to stable storage when the backend supports it.
func (w *Writer) Sync() error {
	if w.file == nil {
		return newError(CodeInvalidState, "sync", w.name, "handle is not open")
	}
	s, ok := w.file.(core.Syncer)
	if !ok {
		return nil
	}
	if err := s.Sync(); err != nil {
		w.log.Error("sync failed", "error", err)
		return wrapError(err, CodeWriteFail, "sync", w.name)
	}
	return nil
}

// Close discards any queued buffers and releases the handle.
func (w *Writer) Close() error {
	w.drain()
	return w.Reader.Close()
}

func (w *Writer) drain() {
	clear(w.queue)
	w.queue = w.queue[:0]
}

func shortWrite(op, name string, requested, written int) error {
	return errors.WithContextMap(
		newError(CodeWriteFail, op, name, "short write"),
		map[string]interface{}{
			"requested": requested,
			"written":   written,
		},
	)
}

var _ io.ReadWriteSeeker = (*Writer)(nil)
