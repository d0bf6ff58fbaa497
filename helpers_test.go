package fsio

import (
	"bytes"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio/billyfs"
	"github.com/jmgilman/go/fsio/core"
	"github.com/jmgilman/go/fsio/logging"
)

// newMemFS returns an FS on an empty in-memory backend.
func newMemFS(t *testing.T) *FS {
	t.Helper()
	return New(WithBackend(billyfs.NewMemory()))
}

// newFixtureFS returns an in-memory FS holding files.
func newFixtureFS(t *testing.T, files fstest.MapFS) *FS {
	t.Helper()
	fsys := newMemFS(t)
	require.NoError(t, core.CopyFromFS(files, fsys.Backend(), ".", "/"))
	return fsys
}

// newLoggedFS returns an FS whose log output is captured in the returned
// buffer.
func newLoggedFS(t *testing.T, backend core.FS) (*FS, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.LogConfig{Level: logging.LogLevelDebug, Output: &buf})
	return New(WithBackend(backend), WithLogger(logger)), &buf
}

// mustWrite creates name with content through fsys.
func mustWrite(t *testing.T, fsys *FS, name, content string) {
	t.Helper()
	require.NoError(t, fsys.WriteStringIntoFile(name, content))
}

// fakeFS overrides selected backend calls. The embedded interface hides the
// optional capabilities of the wrapped backend.
type fakeFS struct {
	core.FS
	openFile func(name string, flag int, perm fs.FileMode) (core.File, error)
	openDir  func(name string) (core.DirStream, error)
	remove   func(name string) error
	rmdir    func(name string) error
	mkdir    func(name string, perm fs.FileMode) error

	removed []string
}

func (f *fakeFS) OpenFile(name string, flag int, perm fs.FileMode) (core.File, error) {
	if f.openFile != nil {
		return f.openFile(name, flag, perm)
	}
	return f.FS.OpenFile(name, flag, perm)
}

func (f *fakeFS) OpenDir(name string) (core.DirStream, error) {
	if f.openDir != nil {
		return f.openDir(name)
	}
	return f.FS.OpenDir(name)
}

func (f *fakeFS) Remove(name string) error {
	f.removed = append(f.removed, name)
	if f.remove != nil {
		return f.remove(name)
	}
	return f.FS.Remove(name)
}

func (f *fakeFS) Rmdir(name string) error {
	f.removed = append(f.removed, name)
	if f.rmdir != nil {
		return f.rmdir(name)
	}
	return f.FS.Rmdir(name)
}

func (f *fakeFS) Mkdir(name string, perm fs.FileMode) error {
	if f.mkdir != nil {
		return f.mkdir(name, perm)
	}
	return f.FS.Mkdir(name, perm)
}

// shortFile accepts at most limit bytes per Write.
type shortFile struct {
	core.File
	limit int
}

func (f *shortFile) Write(p []byte) (int, error) {
	if len(p) > f.limit {
		n, err := f.File.Write(p[:f.limit])
		return n, err
	}
	return f.File.Write(p)
}

// vectorFile implements core.VectorWriter on top of Write and records each
// call. A non-negative cap truncates the reported count.
type vectorFile struct {
	core.File
	calls int
	cap   int
	err   error
}

func (f *vectorFile) Writev(bufs [][]byte) (int, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	n := 0
	for _, b := range bufs {
		m, err := f.File.Write(b)
		n += m
		if err != nil {
			return n, err
		}
	}
	if f.cap >= 0 && n > f.cap {
		n = f.cap
	}
	return n, nil
}

// errFile fails every call with err.
type errFile struct {
	core.File
	err error
}

func (f *errFile) Read([]byte) (int, error)  { return 0, f.err }
func (f *errFile) Write([]byte) (int, error) { return 0, f.err }
func (f *errFile) Seek(int64, int) (int64, error) {
	return 0, f.err
}
func (f *errFile) Close() error {
	_ = f.File.Close()
	return f.err
}

// sliceStream is a DirStream over a fixed list of entries.
type sliceStream struct {
	entries  []core.DirEntry
	closeErr error
	readErr  error
}

func (s *sliceStream) Next() (core.DirEntry, error) {
	if len(s.entries) == 0 {
		if s.readErr != nil {
			return core.DirEntry{}, s.readErr
		}
		return core.DirEntry{}, io.EOF
	}
	e := s.entries[0]
	s.entries = s.entries[1:]
	return e, nil
}

func (s *sliceStream) Close() error {
	return s.closeErr
}

// kindErr returns a backend error of the given kind.
func kindErr(op, path string, kind error) error {
	return core.NewSysError(op, path, kind, nil)
}

// contextOf returns the context attached to a platform error.
func contextOf(t *testing.T, err error) map[string]interface{} {
	t.Helper()
	var perr errors.PlatformError
	require.True(t, errors.As(err, &perr), "not a platform error: %v", err)
	return perr.Context()
}
