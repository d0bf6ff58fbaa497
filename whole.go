package fsio

import (
	"bytes"
	"math"

	"github.com/jmgilman/go/errors"
)

// MaxBufferSize is the largest file the whole-file helpers will load.
const MaxBufferSize = min(math.MaxUint32, math.MaxInt)

// Archivable is implemented by objects that can encode themselves into a byte
// buffer and decode themselves from one. The file layer only sizes buffers
// and moves bytes; the format belongs to the object.
type Archivable interface {
	// ArchiveLength returns the expected encoded size, used to pre-size the
	// buffer.
	ArchiveLength() uint64
	// Archive appends the encoded object to buf and reports success.
	Archive(buf *bytes.Buffer) bool
	// Unarchive decodes the object from data and reports success.
	Unarchive(data []byte) bool
}

// ReadFileIntoBuffer returns the entire contents of path.
//
// The buffer is sized from FileSize. A file larger than MaxBufferSize fails
// with CodeAlloc, and reading fewer bytes than its size with CodeReadFail.
func (fsys *FS) ReadFileIntoBuffer(path string) ([]byte, error) {
	return fsys.readWhole(path, MaxBufferSize)
}

// ReadFileIntoString returns the contents of path as a string. A file larger
// than maxSize fails with CodeAlloc.
func (fsys *FS) ReadFileIntoString(path string, maxSize uint64) (string, error) {
	data, err := fsys.readWhole(path, min(maxSize, MaxBufferSize))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (fsys *FS) readWhole(path string, limit uint64) ([]byte, error) {
	r, err := fsys.OpenRead(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	size := r.Size()
	if size > limit {
		fsys.log.Error("file exceeds available buffer size", "path", path, "size", size, "limit", limit)
		return nil, errors.WithContextMap(
			newError(CodeAlloc, "read", path, "file exceeds available buffer size"),
			map[string]interface{}{"size": size, "limit": limit},
		)
	}

	buf := make([]byte, size)
	read := 0
	for read < len(buf) {
		n, err := r.Read(buf[read:])
		read += n
		if IsEndOfFile(err) {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if read != len(buf) {
		return nil, errors.WithContextMap(
			newError(CodeReadFail, "read", path, "short read"),
			map[string]interface{}{"expected": len(buf), "read": read},
		)
	}
	return buf, nil
}

// WriteBufferIntoFile replaces the contents of path with buf, creating the
// file if needed.
func (fsys *FS) WriteBufferIntoFile(buf []byte, path string) error {
	w, err := fsys.OpenWrite(path)
	if err != nil {
		return err
	}
	if _, err := w.Write(buf); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// WriteStringIntoFile replaces the contents of path with s.
func (fsys *FS) WriteStringIntoFile(path, s string) error {
	return fsys.WriteBufferIntoFile([]byte(s), path)
}

// ReadFileIntoObject reads path and decodes it into obj. A decode failure is
// reported as CodeReadFail.
func (fsys *FS) ReadFileIntoObject(path string, obj Archivable) error {
	data, err := fsys.ReadFileIntoBuffer(path)
	if err != nil {
		return err
	}
	if !obj.Unarchive(data) {
		return newError(CodeReadFail, "unarchive", path, "object rejected the file contents")
	}
	return nil
}

// WriteObjectIntoFile encodes obj and writes it to path. An encode failure is
// reported as CodeWriteFail and leaves path untouched.
func (fsys *FS) WriteObjectIntoFile(obj Archivable, path string) error {
	length := obj.ArchiveLength()
	if length > MaxBufferSize {
		fsys.log.Error("archive exceeds available buffer size", "path", path, "length", length)
		return errors.WithContext(
			newError(CodeAlloc, "archive", path, "archive exceeds available buffer size"),
			"length", length,
		)
	}

	var buf bytes.Buffer
	buf.Grow(int(length))
	if !obj.Archive(&buf) {
		return newError(CodeWriteFail, "archive", path, "object could not be encoded")
	}
	return fsys.WriteBufferIntoFile(buf.Bytes(), path)
}
