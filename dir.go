package fsio

import (
	"io"

	"github.com/jmgilman/go/fsio/core"
	"github.com/jmgilman/go/fsio/logging"
)

// DirScanner iterates over the entries of one directory in the order the
// backend produces them. The zero value is a closed scanner.
type DirScanner struct {
	fsys   *FS
	log    *logging.Logger
	stream core.DirStream
	name   string
	done   bool
}

// OpenDir opens a directory for scanning.
//
// Missing paths and non-directories fail with CodeNotAFile, permission
// denials with CodeNoPerm, malformed names with CodeParam and descriptor
// exhaustion with CodeInvalidState (retryable). Anything else is CodeFail.
func (fsys *FS) OpenDir(dir string) (*DirScanner, error) {
	ds, err := fsys.backend.OpenDir(dir)
	if err != nil {
		return nil, fsys.classify("open directory", dir, err, dirOpenCodes)
	}
	return &DirScanner{fsys: fsys, log: fsys.log.WithPath(dir), stream: ds, name: dir}, nil
}

// Name returns the directory being scanned.
func (d *DirScanner) Name() string {
	return d.name
}

// Next returns the next entry with its type. Once the directory is exhausted
// it returns io.EOF on every call. A closed scanner fails with CodeFileOpen.
func (d *DirScanner) Next() (core.DirEntry, error) {
	if d.stream == nil {
		return core.DirEntry{}, newError(CodeFileOpen, "read directory", d.name, "scanner is not open")
	}
	if d.done {
		return core.DirEntry{}, io.EOF
	}

	e, err := d.stream.Next()
	if err == io.EOF {
		d.done = true
		return core.DirEntry{}, io.EOF
	}
	if err != nil {
		d.done = true
		d.log.Error("read directory failed", "error", err)
		return core.DirEntry{}, wrapError(err, CodeReadFail, "read directory", d.name)
	}
	return e, nil
}

// NextName returns the name of the next entry.
func (d *DirScanner) NextName() (string, error) {
	e, err := d.Next()
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

// Close releases the directory stream. Closing a closed scanner fails with
// CodeFileOpen. The scanner is closed afterwards even when the backend
// reports an error.
func (d *DirScanner) Close() error {
	if d.stream == nil {
		return newError(CodeFileOpen, "close directory", d.name, "scanner is not open")
	}
	ds := d.stream
	d.stream = nil
	if err := ds.Close(); err != nil {
		return d.fsys.classify("close directory", d.name, err, dirCloseCodes)
	}
	return nil
}

// readNames returns every entry name in dir.
func (fsys *FS) readNames(dir string) ([]string, error) {
	d, err := fsys.OpenDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for {
		name, err := d.NextName()
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = d.Close()
			return nil, err
		}
		names = append(names, name)
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return names, nil
}

// isDotEntry reports whether name refers to the directory itself or its
// parent.
func isDotEntry(name string) bool {
	return name == "." || name == ".."
}
