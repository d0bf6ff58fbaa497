package billyfs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"

	"github.com/jmgilman/go/fsio/core"
	"github.com/jmgilman/go/fsio/fstest"
)

// TestMemoryFS_Suite runs the conformance suite against the in-memory backend.
func TestMemoryFS_Suite(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		return NewMemory(), "/"
	})
}

// TestLocalFS_Suite runs the conformance suite against a bound local
// backend rooted in a temporary directory.
func TestLocalFS_Suite(t *testing.T) {
	fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
		return NewLocal(t.TempDir()), "/"
	})
}

// TestMemoryFS_Constructor verifies NewMemory creates a valid filesystem.
func TestMemoryFS_Constructor(t *testing.T) {
	fsys := NewMemory()
	if fsys == nil {
		t.Fatal("NewMemory() returned nil")
	}
	if fsys.bfs == nil {
		t.Error("NewMemory() bfs field is nil")
	}
	if fsys.Type() != core.FSTypeMemory {
		t.Errorf("Type() = %v, want FSTypeMemory", fsys.Type())
	}
}

// TestLocalFS_Constructor verifies NewLocal creates a valid filesystem.
func TestLocalFS_Constructor(t *testing.T) {
	fsys := NewLocal(t.TempDir())
	if fsys.bfs == nil {
		t.Error("NewLocal() bfs field is nil")
	}
	if fsys.Type() != core.FSTypeLocal {
		t.Errorf("Type() = %v, want FSTypeLocal", fsys.Type())
	}
}

// TestMemoryFS_Unwrap verifies Unwrap returns the underlying billy.Filesystem.
func TestMemoryFS_Unwrap(t *testing.T) {
	fsys := NewMemory()
	bfs := fsys.Unwrap()
	if bfs == nil {
		t.Fatal("Unwrap() returned nil")
	}

	// Files created through billy are visible through the adapter.
	f, err := bfs.Create("direct.txt")
	if err != nil {
		t.Fatalf("Create() on unwrapped filesystem: %v", err)
	}
	_ = f.Close()

	if _, err := fsys.Stat("/direct.txt"); err != nil {
		t.Errorf("Stat(/direct.txt) after direct create: %v", err)
	}
}

// TestNew_WrapsArbitraryFilesystem verifies New accepts any billy.Filesystem.
func TestNew_WrapsArbitraryFilesystem(t *testing.T) {
	fsys := New(memfs.New(), core.FSTypeUnknown)
	if fsys.Type() != core.FSTypeUnknown {
		t.Errorf("Type() = %v, want FSTypeUnknown", fsys.Type())
	}
	if err := fsys.Mkdir("/x", 0o755); err != nil {
		t.Errorf("Mkdir(/x): %v", err)
	}
}

// TestNormalize verifies paths are made relative to the billy root.
func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "."},
		{"", "."},
		{"/a/b", "a/b"},
		{"a/./b/../c", "a/c"},
		{"//a//b/", "a/b"},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestMemoryFS_ErrorsAreSysErrors verifies errors carry the operation and kind.
func TestMemoryFS_ErrorsAreSysErrors(t *testing.T) {
	fsys := NewMemory()

	_, err := fsys.OpenFile("/missing", os.O_RDONLY, 0)
	var se *core.SysError
	if !errors.As(err, &se) {
		t.Fatalf("OpenFile(/missing): error %v is not a *core.SysError", err)
	}
	if se.Op != "open" {
		t.Errorf("Op = %q, want %q", se.Op, "open")
	}
	if se.Kind != core.ErrNotExist {
		t.Errorf("Kind = %v, want core.ErrNotExist", se.Kind)
	}
}

// TestMemoryFS_OpenFileDirectory verifies directories cannot be opened as files.
func TestMemoryFS_OpenFileDirectory(t *testing.T) {
	fsys := NewMemory()
	if err := fsys.Mkdir("/d", 0o755); err != nil {
		t.Fatalf("Mkdir(/d): %v", err)
	}
	if _, err := fsys.OpenFile("/d", os.O_RDONLY, 0); !errors.Is(err, core.ErrIsDir) {
		t.Errorf("OpenFile(/d): got error %v, want core.ErrIsDir", err)
	}
}

// TestMemoryFS_OpenFileUnderFile verifies a file parent is rejected.
func TestMemoryFS_OpenFileUnderFile(t *testing.T) {
	fsys := NewMemory()
	f, err := fsys.OpenFile("/plain", os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(/plain): %v", err)
	}
	_ = f.Close()

	if _, err := fsys.OpenFile("/plain/child", os.O_WRONLY|os.O_CREATE, 0o644); !errors.Is(err, core.ErrNotDir) {
		t.Errorf("OpenFile(/plain/child): got error %v, want core.ErrNotDir", err)
	}
}

// TestChroot verifies Chroot scopes operations to a subdirectory.
func TestChroot(t *testing.T) {
	fsys := NewMemory()
	if err := fsys.Mkdir("/sub", 0o755); err != nil {
		t.Fatalf("Mkdir(/sub): %v", err)
	}

	sub, err := fsys.Chroot("/sub")
	if err != nil {
		t.Fatalf("Chroot(/sub): %v", err)
	}
	if sub.Type() != core.FSTypeMemory {
		t.Errorf("Chroot().Type() = %v, want FSTypeMemory", sub.Type())
	}

	f, err := sub.OpenFile("/inner.txt", os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(/inner.txt) in chroot: %v", err)
	}
	_, _ = f.Write([]byte("scoped"))
	_ = f.Close()

	fi, err := fsys.Stat("/sub/inner.txt")
	if err != nil {
		t.Fatalf("Stat(/sub/inner.txt) on parent: %v", err)
	}
	if fi.Size() != 6 {
		t.Errorf("Size() = %d, want 6", fi.Size())
	}
}

// TestChroot_Errors verifies Chroot rejects missing paths and files.
func TestChroot_Errors(t *testing.T) {
	fsys := NewMemory()
	if _, err := fsys.Chroot("/nope"); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Chroot(/nope): got error %v, want core.ErrNotExist", err)
	}

	f, err := fsys.OpenFile("/file", os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(/file): %v", err)
	}
	_ = f.Close()
	if _, err := fsys.Chroot("/file"); !errors.Is(err, core.ErrNotDir) {
		t.Errorf("Chroot(/file): got error %v, want core.ErrNotDir", err)
	}
}

// TestDirStream_Closed verifies a closed stream reports core.ErrClosed.
func TestDirStream_Closed(t *testing.T) {
	fsys := NewMemory()
	ds, err := fsys.OpenDir("/")
	if err != nil {
		t.Fatalf("OpenDir(/): %v", err)
	}
	if _, err := ds.Next(); err != io.EOF {
		t.Errorf("Next() on empty root: got %v, want io.EOF", err)
	}
	if err := ds.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}
	if _, err := ds.Next(); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Next() after Close: got %v, want fs.ErrClosed", err)
	}
	if err := ds.Close(); !errors.Is(err, fs.ErrClosed) {
		t.Errorf("Close() twice: got %v, want fs.ErrClosed", err)
	}
}
