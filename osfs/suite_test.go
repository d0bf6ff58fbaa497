package osfs

import (
	"runtime"
	"testing"

	"github.com/jmgilman/go/fsio/core"
	"github.com/jmgilman/go/fsio/fstest"
)

// TestOSFS runs the conformance suite against the host filesystem.
func TestOSFS(t *testing.T) {
	var skip []string
	if runtime.GOOS == "windows" {
		// Creating symbolic links needs developer mode or elevation.
		skip = append(skip, "Links")
	}

	fstest.TestSuiteWithConfig(t, func(t *testing.T) (core.FS, string) {
		return New(), t.TempDir()
	}, fstest.FSTestConfig{SkipTests: skip})
}
