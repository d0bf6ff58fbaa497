package fsio

import (
	"sort"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/fsio/match"
)

// newFindTree builds a small tree for the search tests.
func newFindTree(t *testing.T) *FS {
	t.Helper()
	return newFixtureFS(t, fstest.MapFS{
		"r/report.txt":         {Data: []byte("r")},
		"r/report.txt.bak":     {Data: []byte("b")},
		"r/.notes.txt":         {Data: []byte("n")},
		"r/sub/notes.txt":      {Data: []byte("n")},
		"r/sub/deep/log.txt":   {Data: []byte("l")},
		"r/.hidden/secret.txt": {Data: []byte("s")},
		"r2/other.txt":         {Data: []byte("o")},
	})
}

func sorted(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func TestFindInPath_Glob(t *testing.T) {
	fsys := newFindTree(t)

	got := fsys.FindInPath(match.NewGlob("*.txt", nil), "/r", false)
	require.Equal(t, []string{
		"/r/report.txt",
		"/r/sub/deep/log.txt",
		"/r/sub/notes.txt",
	}, sorted(got))
}

func TestFindInPath_FromRoot(t *testing.T) {
	fsys := newFixtureFS(t, fstest.MapFS{
		"top.txt":   {Data: []byte("t")},
		"sub/n.txt": {Data: []byte("n")},
	})

	got := fsys.FindInPath(match.NewGlob("*.txt", nil), "/", false)
	require.Equal(t, []string{"/sub/n.txt", "/top.txt"}, sorted(got))
}

func TestFindInPath_Regex(t *testing.T) {
	fsys := newFindTree(t)

	got := fsys.FindInPath(match.NewRegex(`^report`, nil), "/r", false)
	require.Equal(t, []string{"/r/report.txt", "/r/report.txt.bak"}, sorted(got))
}

func TestFindInPath_ExtendedGlob(t *testing.T) {
	fsys := newFindTree(t)

	got := fsys.FindInPath(match.NewExtendedGlob("{notes,log}.txt", nil), "/r", false)
	require.Equal(t, []string{"/r/sub/deep/log.txt", "/r/sub/notes.txt"}, sorted(got))
}

func TestFindInPath_DirectoriesNeverMatch(t *testing.T) {
	fsys := newFindTree(t)

	got := fsys.FindInPath(match.Literal("sub", nil), "/r", false)
	require.Empty(t, got)
}

func TestFindInPath_OneShot(t *testing.T) {
	fsys := newFindTree(t)

	got := fsys.FindInPath(match.NewGlob("*.txt", nil), "/r", true)
	require.Len(t, got, 1)
	require.Contains(t, []string{
		"/r/report.txt",
		"/r/sub/deep/log.txt",
		"/r/sub/notes.txt",
	}, got[0])
}

func TestFindInPath_Unreadable(t *testing.T) {
	fsys, logs := newLoggedFS(t, newMemFS(t).Backend())

	require.Empty(t, fsys.FindInPath(match.Func(func(string) bool { return true }), "/missing", false))
	require.Contains(t, logs.String(), "skipping unreadable directory")
}

func TestFindInPath_InvalidPattern(t *testing.T) {
	fsys := newFindTree(t)

	m := match.NewRegex("(", nil)
	require.Error(t, m.Err())
	require.Empty(t, fsys.FindInPath(m, "/r", false))
}

func TestFindInPaths(t *testing.T) {
	fsys := newFindTree(t)
	m := match.NewExtendedGlob("{report,other}.txt", nil)

	got := fsys.FindInPaths(m, []string{"/missing", "/r", "/r2"}, false)
	require.Equal(t, []string{"/r/report.txt", "/r2/other.txt"}, got)

	got = fsys.FindInPaths(m, []string{"/missing", "/r2", "/r"}, true)
	require.Equal(t, []string{"/r2/other.txt"}, got)
}
