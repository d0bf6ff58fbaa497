package fstest

import (
	"errors"
	"io"
	"sort"
	"testing"

	"github.com/jmgilman/go/fsio/core"
)

// TestDirStream tests OpenDir and core.DirStream.
func TestDirStream(t *testing.T, fsys core.FS, root string) {
	TestDirStreamWithConfig(t, fsys, root, FSTestConfig{})
}

// TestDirStreamWithConfig tests directory streams with behavior configuration.
func TestDirStreamWithConfig(t *testing.T, fsys core.FS, root string, config FSTestConfig) {
	t.Run("Entries", func(t *testing.T) {
		config.skip(t, "DirStream/Entries")
		testDirStreamEntries(t, fsys, root)
	})
	t.Run("Empty", func(t *testing.T) {
		config.skip(t, "DirStream/Empty")
		testDirStreamEmpty(t, fsys, root)
	})
	t.Run("Errors", func(t *testing.T) {
		config.skip(t, "DirStream/Errors")
		testDirStreamErrors(t, fsys, root)
	})
}

func testDirStreamEntries(t *testing.T, fsys core.FS, root string) {
	dir := path(fsys, root, "listing")
	mkdir(t, fsys, dir)
	mkdir(t, fsys, path(fsys, root, "listing", "sub"))
	writeFile(t, fsys, path(fsys, root, "listing", "b.txt"), []byte("b"))
	writeFile(t, fsys, path(fsys, root, "listing", "a.txt"), []byte("a"))
	writeFile(t, fsys, path(fsys, root, "listing", ".hidden"), nil)

	ds, err := fsys.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir(%s): got error %v, want nil", dir, err)
	}

	got := map[string]core.EntryType{}
	var names []string
	for {
		e, err := ds.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next(): got error %v, want nil or io.EOF", err)
		}
		got[e.Name] = e.Type
		names = append(names, e.Name)
	}
	if _, err := ds.Next(); err != io.EOF {
		t.Errorf("Next() after exhaustion: got %v, want io.EOF", err)
	}
	if err := ds.Close(); err != nil {
		t.Errorf("Close(): got error %v, want nil", err)
	}

	sort.Strings(names)
	want := []string{".hidden", "a.txt", "b.txt", "sub"}
	if len(names) != len(want) {
		t.Fatalf("entries = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entries = %v, want %v", names, want)
			break
		}
	}
	if got["sub"] != core.EntryDir {
		t.Errorf("type of sub = %v, want dir", got["sub"])
	}
	if got["a.txt"] != core.EntryFile {
		t.Errorf("type of a.txt = %v, want file", got["a.txt"])
	}
}

func testDirStreamEmpty(t *testing.T, fsys core.FS, root string) {
	dir := path(fsys, root, "void")
	mkdir(t, fsys, dir)

	ds, err := fsys.OpenDir(dir)
	if err != nil {
		t.Fatalf("OpenDir(%s): got error %v, want nil", dir, err)
	}
	defer func() { _ = ds.Close() }()

	for i := 0; i < 2; i++ {
		if _, err := ds.Next(); err != io.EOF {
			t.Errorf("Next() #%d on empty dir: got %v, want io.EOF", i, err)
		}
	}
}

func testDirStreamErrors(t *testing.T, fsys core.FS, root string) {
	missing := path(fsys, root, "nothing")
	if _, err := fsys.OpenDir(missing); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("OpenDir(%s): got error %v, want core.ErrNotExist", missing, err)
	}

	file := path(fsys, root, "plain.txt")
	writeFile(t, fsys, file, []byte("x"))
	if _, err := fsys.OpenDir(file); !errors.Is(err, core.ErrNotDir) {
		t.Errorf("OpenDir(%s) on a file: got error %v, want core.ErrNotDir", file, err)
	}
}
