package fstest

import (
	"errors"
	"testing"

	"github.com/jmgilman/go/fsio/core"
)

// TestSpace tests the optional SpaceReporter capability.
func TestSpace(t *testing.T, fsys core.FS, root string) {
	TestSpaceWithConfig(t, fsys, root, FSTestConfig{})
}

// TestSpaceWithConfig tests SpaceReporter with behavior configuration.
func TestSpaceWithConfig(t *testing.T, fsys core.FS, root string, config FSTestConfig) {
	sr, ok := fsys.(core.SpaceReporter)
	if !ok {
		t.Skip("backend does not implement core.SpaceReporter")
	}

	t.Run("Statfs", func(t *testing.T) {
		config.skip(t, "Space/Statfs")
		sp, err := sr.Statfs(root)
		if errors.Is(err, core.ErrUnsupported) {
			t.Skip("Statfs unsupported on this platform")
		}
		if err != nil {
			t.Fatalf("Statfs(%s): got error %v, want nil", root, err)
		}
		if sp.Total == 0 || sp.Blocks == 0 {
			t.Errorf("Statfs(%s) = %+v, want non-zero total and blocks", root, sp)
		}
		if sp.Free > sp.Total {
			t.Errorf("Statfs(%s): free %d exceeds total %d", root, sp.Free, sp.Total)
		}
	})
	t.Run("StatfsNotExist", func(t *testing.T) {
		config.skip(t, "Space/StatfsNotExist")
		missing := path(fsys, root, "missing")
		if _, err := sr.Statfs(missing); !errors.Is(err, core.ErrNotExist) && !errors.Is(err, core.ErrUnsupported) {
			t.Errorf("Statfs(%s): got error %v, want core.ErrNotExist", missing, err)
		}
	})
}
