package fsio

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fsio/billyfs"
	"github.com/jmgilman/go/fsio/core"
)

func TestResolveLinks_Memory(t *testing.T) {
	backend := billyfs.NewMemory()
	fsys := New(WithBackend(backend))

	require.NoError(t, fsys.CreateDirectories("/real/dir"))
	mustWrite(t, fsys, "/real/dir/file", "x")
	require.NoError(t, backend.Symlink("/real", "/abs"))
	require.NoError(t, backend.Symlink("dir", "/real/rel"))
	require.NoError(t, backend.Symlink("rel/file", "/real/chain"))

	tests := []struct {
		in   string
		want string
	}{
		{"/real/dir/file", "/real/dir/file"},
		{"/abs/dir/file", "/real/dir/file"},
		{"/real/rel/file", "/real/dir/file"},
		{"/abs/rel/./../rel/file", "/real/dir/file"},
		{"/real/chain", "/real/dir/file"},
		{"/", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := fsys.ResolveLinks(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestResolveLinks_RelativeInput(t *testing.T) {
	backend := billyfs.NewMemory()
	fsys := New(WithBackend(backend))
	require.NoError(t, fsys.CreateDirectories("/a"))
	require.NoError(t, backend.Symlink("a", "/b"))

	// The memory backend's working directory is the root.
	_, err := fsys.ResolveLinks("b/./x")
	require.Error(t, err)
	require.Equal(t, CodeNotAFile, Code(err))

	mustWrite(t, fsys, "/a/x", "")
	got, err := fsys.ResolveLinks("b/./x")
	require.NoError(t, err)
	require.Equal(t, "/a/x", got)
}

func TestResolveLinks_Cycle(t *testing.T) {
	backend := billyfs.NewMemory()
	fsys, logs := newLoggedFS(t, backend)
	require.NoError(t, backend.Symlink("/loop2", "/loop1"))
	require.NoError(t, backend.Symlink("/loop1", "/loop2"))

	_, err := fsys.ResolveLinks("/loop1/x")
	require.Equal(t, CodeParam, Code(err))
	require.Contains(t, logs.String(), "too many levels of symbolic links")
}

func TestResolveLinks_NoLinkReader(t *testing.T) {
	// fakeFS hides the LinkReader capability of the wrapped backend.
	backend := billyfs.NewMemory()
	require.NoError(t, backend.Symlink("/elsewhere", "/link"))
	fsys := New(WithBackend(&fakeFS{FS: backend}))

	_, ok := fsys.Backend().(core.LinkReader)
	require.False(t, ok)

	got, err := fsys.ResolveLinks("/link/../link/./y")
	require.NoError(t, err)
	require.Equal(t, "/link/y", got)
}

func TestResolveLinks_Native(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symbolic links need elevation on windows")
	}

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "target", "deep"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(root, "target"), filepath.Join(root, "abs")))
	require.NoError(t, os.Symlink("target/deep", filepath.Join(root, "rel")))

	fsys := New()

	got, err := fsys.ResolveLinks(filepath.Join(root, "abs", "deep"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "target", "deep"), got)

	got, err = fsys.ResolveLinks(filepath.Join(root, "rel"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "target", "deep"), got)

	_, err = fsys.ResolveLinks(filepath.Join(root, "missing", "child"))
	require.Equal(t, CodeNotAFile, Code(err))
}
