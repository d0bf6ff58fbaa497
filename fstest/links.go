package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/fsio/core"
)

// TestLinks tests the optional Linker and LinkReader capabilities. The group
// is skipped for backends that lack either.
func TestLinks(t *testing.T, fsys core.FS, root string) {
	TestLinksWithConfig(t, fsys, root, FSTestConfig{})
}

// TestLinksWithConfig tests symbolic links with behavior configuration.
func TestLinksWithConfig(t *testing.T, fsys core.FS, root string, config FSTestConfig) {
	linker, ok := fsys.(core.Linker)
	if !ok {
		t.Skip("backend does not implement core.Linker")
	}
	reader, ok := fsys.(core.LinkReader)
	if !ok {
		t.Skip("backend does not implement core.LinkReader")
	}

	t.Run("ReadlinkRelative", func(t *testing.T) {
		config.skip(t, "Links/ReadlinkRelative")
		testLinksReadlinkRelative(t, fsys, linker, reader, root)
	})
	t.Run("ReadlinkNotLink", func(t *testing.T) {
		config.skip(t, "Links/ReadlinkNotLink")
		testLinksReadlinkNotLink(t, fsys, reader, root)
	})
	t.Run("SymlinkExists", func(t *testing.T) {
		config.skip(t, "Links/SymlinkExists")
		testLinksSymlinkExists(t, fsys, linker, root)
	})
	t.Run("RemoveLink", func(t *testing.T) {
		config.skip(t, "Links/RemoveLink")
		testLinksRemoveLink(t, fsys, linker, root)
	})
}

func testLinksReadlinkRelative(t *testing.T, fsys core.FS, linker core.Linker, reader core.LinkReader, root string) {
	target := path(fsys, root, "target.txt")
	writeFile(t, fsys, target, []byte("payload"))
	link := path(fsys, root, "link")

	if err := linker.Symlink("target.txt", link); err != nil {
		t.Fatalf("Symlink(target.txt, %s): got error %v, want nil", link, err)
	}

	got, err := reader.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(%s): got error %v, want nil", link, err)
	}
	if got != "target.txt" {
		t.Errorf("Readlink(%s) = %q, want %q", link, got, "target.txt")
	}

	lfi, err := fsys.Lstat(link)
	if err != nil {
		t.Fatalf("Lstat(%s): got error %v, want nil", link, err)
	}
	if lfi.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat(%s).Mode() = %v, want symlink", link, lfi.Mode())
	}

	fi, err := fsys.Stat(link)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", link, err)
	}
	if !fi.Mode().IsRegular() || fi.Size() != int64(len("payload")) {
		t.Errorf("Stat(%s) = mode %v size %d, want the target's metadata", link, fi.Mode(), fi.Size())
	}
}

func testLinksReadlinkNotLink(t *testing.T, fsys core.FS, reader core.LinkReader, root string) {
	file := path(fsys, root, "regular.txt")
	writeFile(t, fsys, file, []byte("x"))
	if _, err := reader.Readlink(file); !errors.Is(err, core.ErrNotLink) {
		t.Errorf("Readlink(%s) on a file: got error %v, want core.ErrNotLink", file, err)
	}

	missing := path(fsys, root, "ghost")
	if _, err := reader.Readlink(missing); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Readlink(%s): got error %v, want core.ErrNotExist", missing, err)
	}
}

func testLinksSymlinkExists(t *testing.T, fsys core.FS, linker core.Linker, root string) {
	taken := path(fsys, root, "taken")
	writeFile(t, fsys, taken, nil)
	if err := linker.Symlink("anything", taken); !errors.Is(err, core.ErrExist) {
		t.Errorf("Symlink(anything, %s) over a file: got error %v, want core.ErrExist", taken, err)
	}
}

func testLinksRemoveLink(t *testing.T, fsys core.FS, linker core.Linker, root string) {
	dir := path(fsys, root, "realdir")
	mkdir(t, fsys, dir)
	link := path(fsys, root, "dirlink")
	if err := linker.Symlink("realdir", link); err != nil {
		t.Fatalf("Symlink(realdir, %s): got error %v, want nil", link, err)
	}

	if err := fsys.Remove(link); err != nil {
		t.Fatalf("Remove(%s) on a link to a directory: got error %v, want nil", link, err)
	}
	if _, err := fsys.Lstat(link); !errors.Is(err, core.ErrNotExist) {
		t.Errorf("Lstat(%s) after Remove: got error %v, want core.ErrNotExist", link, err)
	}
	if _, err := fsys.Stat(dir); err != nil {
		t.Errorf("Stat(%s): link target should survive: %v", dir, err)
	}
}
