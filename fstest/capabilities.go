package fstest

import (
	"io"
	"os"
	"testing"

	"github.com/jmgilman/go/fsio/core"
)

// TestFileCapabilities tests the optional interfaces a core.File may
// implement: Truncater, Syncer and VectorWriter. Absent capabilities are
// skipped.
func TestFileCapabilities(t *testing.T, fsys core.FS, root string) {
	TestFileCapabilitiesWithConfig(t, fsys, root, FSTestConfig{})
}

// TestFileCapabilitiesWithConfig tests file capabilities with behavior
// configuration.
func TestFileCapabilitiesWithConfig(t *testing.T, fsys core.FS, root string, config FSTestConfig) {
	t.Run("Truncater", func(t *testing.T) {
		config.skip(t, "FileCapabilities/Truncater")
		testCapTruncater(t, fsys, root)
	})
	t.Run("Syncer", func(t *testing.T) {
		config.skip(t, "FileCapabilities/Syncer")
		testCapSyncer(t, fsys, root)
	})
	t.Run("VectorWriter", func(t *testing.T) {
		config.skip(t, "FileCapabilities/VectorWriter")
		testCapVectorWriter(t, fsys, root)
	})
}

func openRW(t *testing.T, fsys core.FS, name string) core.File {
	t.Helper()
	f, err := fsys.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func testCapTruncater(t *testing.T, fsys core.FS, root string) {
	f := openRW(t, fsys, path(fsys, root, "cap-trunc"))
	tr, ok := f.(core.Truncater)
	if !ok {
		t.Skip("file does not implement core.Truncater")
	}

	if _, err := f.Write([]byte("0123456789")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := tr.Truncate(4); err != nil {
		t.Fatalf("Truncate(4): got error %v, want nil", err)
	}
	fi, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat(): got error %v, want nil", err)
	}
	if fi.Size() != 4 {
		t.Errorf("Stat().Size() after Truncate(4) = %d, want 4", fi.Size())
	}
}

func testCapSyncer(t *testing.T, fsys core.FS, root string) {
	f := openRW(t, fsys, path(fsys, root, "cap-sync"))
	s, ok := f.(core.Syncer)
	if !ok {
		t.Skip("file does not implement core.Syncer")
	}
	if _, err := f.Write([]byte("durable")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := s.Sync(); err != nil {
		t.Errorf("Sync(): got error %v, want nil", err)
	}
}

func testCapVectorWriter(t *testing.T, fsys core.FS, root string) {
	f := openRW(t, fsys, path(fsys, root, "cap-writev"))
	vw, ok := f.(core.VectorWriter)
	if !ok {
		t.Skip("file does not implement core.VectorWriter")
	}

	n, err := vw.Writev([][]byte{[]byte("ab"), nil, []byte("cde"), []byte("f")})
	if err != nil {
		t.Fatalf("Writev(): got error %v, want nil", err)
	}
	if n != 6 {
		t.Errorf("Writev() = %d bytes, want 6", n)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0, SeekStart): got error %v, want nil", err)
	}
	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(): got error %v, want nil", err)
	}
	if string(got) != "abcdef" {
		t.Errorf("content after Writev = %q, want %q", got, "abcdef")
	}
}
