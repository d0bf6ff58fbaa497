package fstest

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/fsio/core"
)

// TestDirs tests Mkdir, Remove and Rmdir.
func TestDirs(t *testing.T, fsys core.FS, root string) {
	TestDirsWithConfig(t, fsys, root, FSTestConfig{})
}

// TestDirsWithConfig tests directory management with behavior configuration.
func TestDirsWithConfig(t *testing.T, fsys core.FS, root string, config FSTestConfig) {
	t.Run("Mkdir", func(t *testing.T) {
		config.skip(t, "Dirs/Mkdir")
		testDirsMkdir(t, fsys, root)
	})
	t.Run("Remove", func(t *testing.T) {
		config.skip(t, "Dirs/Remove")
		testDirsRemove(t, fsys, root)
	})
	t.Run("Rmdir", func(t *testing.T) {
		config.skip(t, "Dirs/Rmdir")
		testDirsRmdir(t, fsys, root)
	})
	t.Run("Getwd", func(t *testing.T) {
		config.skip(t, "Dirs/Getwd")
		testDirsGetwd(t, fsys)
	})
}

func testDirsMkdir(t *testing.T, fsys core.FS, root string) {
	dir := path(fsys, root, "newdir")
	if err := fsys.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): got error %v, want nil", dir, err)
	}

	fi, err := fsys.Stat(dir)
	if err != nil || !fi.IsDir() {
		t.Fatalf("Stat(%s) after Mkdir: got (%v, %v), want a directory", dir, fi, err)
	}

	if err := fsys.Mkdir(dir, 0o755); !errors.Is(err, core.ErrExist) {
		t.Errorf("Mkdir(%s) twice: got error %v, want core.ErrExist", dir, err)
	}

	file := path(fsys, root, "occupied")
	writeFile(t, fsys, file, nil)
	if err := fsys.Mkdir(file, 0o755); !errors.Is(err, core.ErrExist) {
		t.Errorf("Mkdir(%s) over a file: got error %v, want core.ErrExist", file, err)
	}

	nested := path(fsys, root, "a", "b")
	if err := fsys.Mkdir(nested, 0o755); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Mkdir(%s) without parent: got error %v, want core.ErrNotExist", nested, err)
	}
}

func testDirsRemove(t *testing.T, fsys core.FS, root string) {
	file := path(fsys, root, "victim.txt")
	writeFile(t, fsys, file, []byte("x"))

	if err := fsys.Remove(file); err != nil {
		t.Fatalf("Remove(%s): got error %v, want nil", file, err)
	}
	if _, err := fsys.Stat(file); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Stat(%s) after Remove: got error %v, want core.ErrNotExist", file, err)
	}
	if err := fsys.Remove(file); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Remove(%s) twice: got error %v, want core.ErrNotExist", file, err)
	}

	dir := path(fsys, root, "keep")
	mkdir(t, fsys, dir)
	err := fsys.Remove(dir)
	if !errors.Is(err, core.ErrIsDir) && !errors.Is(err, core.ErrPermission) {
		t.Errorf("Remove(%s) on a directory: got error %v, want core.ErrIsDir or core.ErrPermission", dir, err)
	}
	if _, err := fsys.Stat(dir); err != nil {
		t.Errorf("Stat(%s): directory should survive Remove: %v", dir, err)
	}
}

func testDirsRmdir(t *testing.T, fsys core.FS, root string) {
	dir := path(fsys, root, "full")
	mkdir(t, fsys, dir)
	child := path(fsys, root, "full", "child.txt")
	writeFile(t, fsys, child, []byte("x"))

	if err := fsys.Rmdir(dir); !errors.Is(err, core.ErrNotEmpty) && !errors.Is(err, core.ErrExist) {
		t.Errorf("Rmdir(%s) non-empty: got error %v, want core.ErrNotEmpty", dir, err)
	}
	if err := fsys.Rmdir(child); !errors.Is(err, core.ErrNotDir) {
		t.Errorf("Rmdir(%s) on a file: got error %v, want core.ErrNotDir", child, err)
	}

	if err := fsys.Remove(child); err != nil {
		t.Fatalf("Remove(%s): got error %v, want nil", child, err)
	}
	if err := fsys.Rmdir(dir); err != nil {
		t.Fatalf("Rmdir(%s) empty: got error %v, want nil", dir, err)
	}
	if err := fsys.Rmdir(dir); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Rmdir(%s) twice: got error %v, want core.ErrNotExist", dir, err)
	}
}

func testDirsGetwd(t *testing.T, fsys core.FS) {
	wd, err := fsys.Getwd()
	if err != nil {
		t.Fatalf("Getwd(): got error %v, want nil", err)
	}
	if wd == "" {
		t.Errorf("Getwd() returned an empty path")
	}
}
