// Package fstest provides a conformance test suite for validating backend
// implementations against the core.FS contract.
//
// This package contains test functions that can be imported and executed by
// backend packages to verify they correctly implement core.FS and the
// optional capabilities (LinkReader, Linker, VectorWriter, SpaceReporter,
// Truncater, Syncer).
//
// The suite validates the contract the fsio layer relies on, in particular
// the error kinds a backend reports, not backend-specific behavior.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FS, string) {
//	        return mybackend.New(), t.TempDir()
//	    })
//	}
package fstest

import (
	"os"
	"testing"

	"github.com/jmgilman/go/fsio/core"
)

// NewFSFunc returns a backend and a directory on it that the test owns. The
// directory must exist and be empty.
type NewFSFunc func(t *testing.T) (core.FS, string)

// FSTestConfig configures the test suite to match backend characteristics.
type FSTestConfig struct {
	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup/SubTest" (e.g., "Links/ReadlinkRelative").
	SkipTests []string
}

func (c FSTestConfig) skip(t *testing.T, name string) {
	t.Helper()
	for _, s := range c.SkipTests {
		if s == name {
			t.Skip("Skipped by backend configuration")
		}
	}
}

// TestSuite runs all applicable conformance tests against a backend.
// The newFS function is called once per group so each group starts clean.
func TestSuite(t *testing.T, newFS NewFSFunc) {
	TestSuiteWithConfig(t, newFS, FSTestConfig{})
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS NewFSFunc, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(t *testing.T, fsys core.FS, root string, config FSTestConfig)
	}{
		{"Files", TestFilesWithConfig},
		{"Dirs", TestDirsWithConfig},
		{"DirStream", TestDirStreamWithConfig},
		{"Links", TestLinksWithConfig},
		{"FileCapabilities", TestFileCapabilitiesWithConfig},
		{"Space", TestSpaceWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			config.skip(t, g.name)
			fsys, root := newFS(t)
			g.run(t, fsys, root, config)
		})
	}
}

// path joins elems under root using the backend's separator.
func path(fsys core.FS, root string, elems ...string) string {
	sep := fsys.Separator()
	return sep.Canonical(sep.Concat(append([]string{root}, elems...)...))
}

// writeFile creates name with data, failing the test on error.
func writeFile(t *testing.T, fsys core.FS, name string, data []byte) {
	t.Helper()
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%s): setup failed: %v", name, err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("Write(%s): setup failed: %v", name, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(%s): setup failed: %v", name, err)
	}
}

// mkdir creates name, failing the test on error.
func mkdir(t *testing.T, fsys core.FS, name string) {
	t.Helper()
	if err := fsys.Mkdir(name, 0o755); err != nil {
		t.Fatalf("Mkdir(%s): setup failed: %v", name, err)
	}
}
