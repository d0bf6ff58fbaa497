package fstest

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/jmgilman/go/fsio/core"
)

// TestFiles tests OpenFile and the core.File methods.
func TestFiles(t *testing.T, fsys core.FS, root string) {
	TestFilesWithConfig(t, fsys, root, FSTestConfig{})
}

// TestFilesWithConfig tests file handles with behavior configuration.
func TestFilesWithConfig(t *testing.T, fsys core.FS, root string, config FSTestConfig) {
	t.Run("CreateWriteRead", func(t *testing.T) {
		config.skip(t, "Files/CreateWriteRead")
		testFilesCreateWriteRead(t, fsys, root)
	})
	t.Run("Seek", func(t *testing.T) {
		config.skip(t, "Files/Seek")
		testFilesSeek(t, fsys, root)
	})
	t.Run("Truncate", func(t *testing.T) {
		config.skip(t, "Files/Truncate")
		testFilesTruncate(t, fsys, root)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		config.skip(t, "Files/OpenNotExist")
		testFilesOpenNotExist(t, fsys, root)
	})
	t.Run("CreateInNonExistentDir", func(t *testing.T) {
		config.skip(t, "Files/CreateInNonExistentDir")
		testFilesCreateInMissingDir(t, fsys, root)
	})
}

func testFilesCreateWriteRead(t *testing.T, fsys core.FS, root string) {
	name := path(fsys, root, "data.bin")
	content := []byte("the quick brown fox")
	writeFile(t, fsys, name, content)

	f, err := fsys.OpenFile(name, os.O_RDONLY, 0)
	if err != nil {
		t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(%s): got error %v, want nil", name, err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("ReadAll(%s) = %q, want %q", name, got, content)
	}

	n, err := f.Read(make([]byte, 4))
	if n != 0 || err != io.EOF {
		t.Errorf("Read at end: got (%d, %v), want (0, io.EOF)", n, err)
	}

	fi, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat(): got error %v, want nil", err)
	}
	if fi.Size() != int64(len(content)) || !fi.Mode().IsRegular() {
		t.Errorf("Stat() = size %d mode %v, want size %d regular", fi.Size(), fi.Mode(), len(content))
	}
	if f.Name() != name {
		t.Errorf("Name() = %q, want %q", f.Name(), name)
	}
}

func testFilesSeek(t *testing.T, fsys core.FS, root string) {
	name := path(fsys, root, "seek.bin")
	writeFile(t, fsys, name, []byte("0123456789"))

	f, err := fsys.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("OpenFile(%s): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	pos, err := f.Seek(4, io.SeekStart)
	if err != nil || pos != 4 {
		t.Fatalf("Seek(4, SeekStart) = (%d, %v), want (4, nil)", pos, err)
	}
	buf := make([]byte, 3)
	if _, err := io.ReadFull(f, buf); err != nil || string(buf) != "456" {
		t.Errorf("Read after seek = (%q, %v), want (\"456\", nil)", buf, err)
	}

	pos, err = f.Seek(0, io.SeekCurrent)
	if err != nil || pos != 7 {
		t.Errorf("Seek(0, SeekCurrent) = (%d, %v), want (7, nil)", pos, err)
	}

	pos, err = f.Seek(-2, io.SeekEnd)
	if err != nil || pos != 8 {
		t.Errorf("Seek(-2, SeekEnd) = (%d, %v), want (8, nil)", pos, err)
	}

	if _, err := f.Seek(-100, io.SeekStart); err == nil {
		t.Errorf("Seek(-100, SeekStart): got nil error, want failure")
	}
}

func testFilesTruncate(t *testing.T, fsys core.FS, root string) {
	name := path(fsys, root, "trunc.txt")
	writeFile(t, fsys, name, []byte("long content here"))
	writeFile(t, fsys, name, []byte("short"))

	fi, err := fsys.Stat(name)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", name, err)
	}
	if fi.Size() != 5 {
		t.Errorf("Stat(%s).Size() = %d after O_TRUNC rewrite, want 5", name, fi.Size())
	}
}

func testFilesOpenNotExist(t *testing.T, fsys core.FS, root string) {
	name := path(fsys, root, "missing.txt")
	_, err := fsys.OpenFile(name, os.O_RDONLY, 0)
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("OpenFile(%s): got error %v, want core.ErrNotExist", name, err)
	}
	if _, err := fsys.Stat(name); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Stat(%s): got error %v, want core.ErrNotExist", name, err)
	}
	if _, err := fsys.Lstat(name); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Lstat(%s): got error %v, want core.ErrNotExist", name, err)
	}
}

func testFilesCreateInMissingDir(t *testing.T, fsys core.FS, root string) {
	name := path(fsys, root, "nodir", "file.txt")
	_, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE, 0o644)
	if !errors.Is(err, core.ErrNotExist) {
		t.Errorf("OpenFile(%s, O_CREATE): got error %v, want core.ErrNotExist", name, err)
	}
}
