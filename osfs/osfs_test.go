package osfs

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fsio/core"
)

func TestFS_Type(t *testing.T) {
	fsys := New()
	require.Equal(t, core.FSTypeLocal, fsys.Type())
	require.Equal(t, byte(os.PathSeparator), byte(fsys.Separator()))
}

func TestFS_OpenFile_NotExist(t *testing.T) {
	fsys := New()
	_, err := fsys.OpenFile(filepath.Join(t.TempDir(), "missing"), os.O_RDONLY, 0)
	require.ErrorIs(t, err, core.ErrNotExist)

	var se *core.SysError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "open", se.Op)
}

func TestFS_FileRoundTrip(t *testing.T) {
	fsys := New()
	name := filepath.Join(t.TempDir(), "data.bin")

	f, err := fsys.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	require.NoError(t, err)

	n, err := f.Write([]byte("hello world"))
	require.NoError(t, err)
	require.Equal(t, 11, n)

	pos, err := f.Seek(6, io.SeekStart)
	require.NoError(t, err)
	require.Equal(t, int64(6), pos)

	buf := make([]byte, 16)
	n, err = f.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "world", string(buf[:n]))

	_, err = f.Read(buf)
	require.Equal(t, io.EOF, err)

	fi, err := f.Stat()
	require.NoError(t, err)
	require.Equal(t, int64(11), fi.Size())
	require.Equal(t, name, f.Name())

	require.NoError(t, f.(core.Truncater).Truncate(5))
	require.NoError(t, f.(core.Syncer).Sync())
	require.NoError(t, f.Close())

	fi, err = fsys.Stat(name)
	require.NoError(t, err)
	require.Equal(t, int64(5), fi.Size())
}

func TestFS_Mkdir(t *testing.T) {
	fsys := New()
	dir := filepath.Join(t.TempDir(), "a")

	require.NoError(t, fsys.Mkdir(dir, 0o755))
	require.ErrorIs(t, fsys.Mkdir(dir, 0o755), core.ErrExist)
	require.ErrorIs(t, fsys.Mkdir(filepath.Join(dir, "x", "y"), 0o755), core.ErrNotExist)
}

func TestFS_RemoveAndRmdir(t *testing.T) {
	fsys := New()
	root := t.TempDir()
	dir := filepath.Join(root, "d")
	file := filepath.Join(dir, "f")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	err := fsys.Remove(dir)
	require.Error(t, err)
	require.True(t, core.KindOf(err) == core.ErrIsDir || core.KindOf(err) == core.ErrPermission)

	require.ErrorIs(t, fsys.Rmdir(dir), core.ErrNotEmpty)
	require.ErrorIs(t, fsys.Rmdir(file), core.ErrNotDir)

	require.NoError(t, fsys.Remove(file))
	require.ErrorIs(t, fsys.Remove(file), core.ErrNotExist)
	require.NoError(t, fsys.Rmdir(dir))
	require.ErrorIs(t, fsys.Rmdir(dir), core.ErrNotExist)
}

func TestFS_OpenDir(t *testing.T) {
	fsys := New()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	for i := 0; i < dirBatch+5; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "f"+string(rune('a'+i%26))+string(rune('a'+i/26))), nil, 0o644))
	}

	ds, err := fsys.OpenDir(root)
	require.NoError(t, err)

	var names []string
	types := map[string]core.EntryType{}
	for {
		e, err := ds.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		names = append(names, e.Name)
		types[e.Name] = e.Type
	}

	_, err = ds.Next()
	require.Equal(t, io.EOF, err)
	require.NoError(t, ds.Close())

	require.Len(t, names, dirBatch+6)
	require.NotContains(t, names, ".")
	require.NotContains(t, names, "..")
	require.Equal(t, core.EntryDir, types["sub"])
	require.Equal(t, core.EntryFile, types["faa"])

	sort.Strings(names)
	require.Equal(t, "faa", names[0])
}

func TestFS_OpenDir_Errors(t *testing.T) {
	fsys := New()
	root := t.TempDir()
	file := filepath.Join(root, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := fsys.OpenDir(file)
	require.ErrorIs(t, err, core.ErrNotDir)

	_, err = fsys.OpenDir(filepath.Join(root, "missing"))
	require.ErrorIs(t, err, core.ErrNotExist)
}

func TestFS_Getwd(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	wd, err := New().Getwd()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
