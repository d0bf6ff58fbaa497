package core_test

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
	"testing"

	"github.com/jmgilman/go/fsio/core"
)

// TestReexportedErrorsMatchStdlib verifies re-exported errors match stdlib.
func TestReexportedErrorsMatchStdlib(t *testing.T) {
	tests := []struct {
		name      string
		coreErr   error
		stdlibErr error
	}{
		{"ErrNotExist", core.ErrNotExist, fs.ErrNotExist},
		{"ErrExist", core.ErrExist, fs.ErrExist},
		{"ErrPermission", core.ErrPermission, fs.ErrPermission},
		{"ErrClosed", core.ErrClosed, fs.ErrClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.coreErr, tt.stdlibErr) || !errors.Is(tt.stdlibErr, tt.coreErr) {
				t.Errorf("%s does not match stdlib: core=%v, stdlib=%v",
					tt.name, tt.coreErr, tt.stdlibErr)
			}
		})
	}
}

// TestSysError_Is verifies a SysError matches its kind and nothing else.
func TestSysError_Is(t *testing.T) {
	cause := errors.New("errno 39")
	err := core.NewSysError("rmdir", "/data", core.ErrNotEmpty, cause)

	if !errors.Is(err, core.ErrNotEmpty) {
		t.Error("expected SysError to match its kind")
	}
	if errors.Is(err, core.ErrNotExist) {
		t.Error("SysError matched an unrelated kind")
	}
	if !errors.Is(err, cause) {
		t.Error("expected SysError to unwrap to its cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, core.ErrNotEmpty) {
		t.Error("expected wrapped SysError to match its kind")
	}
}

// TestSysError_Error verifies the message format.
func TestSysError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *core.SysError
		want string
	}{
		{"with cause", core.NewSysError("open", "/x", core.ErrNotExist, errors.New("no such file")), "open /x: no such file"},
		{"kind only", core.NewSysError("readlink", "/y", core.ErrNotLink, nil), "readlink /y: not a symbolic link"},
		{"no path", core.NewSysError("getwd", "", nil, nil), "getwd: failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestKindOf verifies classification of backend errors.
func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"sys error", core.NewSysError("mkdir", "a", core.ErrExist, nil), core.ErrExist},
		{"path error not exist", &fs.PathError{Op: "open", Path: "a", Err: fs.ErrNotExist}, core.ErrNotExist},
		{"errno permission", &fs.PathError{Op: "open", Path: "a", Err: syscall.EACCES}, core.ErrPermission},
		{"wrapped sentinel", fmt.Errorf("x: %w", core.ErrBusy), core.ErrBusy},
		{"unclassified", errors.New("mystery"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestErrorIdentity verifies the sentinels are distinct.
func TestErrorIdentity(t *testing.T) {
	all := []error{
		core.ErrNotExist, core.ErrExist, core.ErrPermission, core.ErrClosed,
		core.ErrUnsupported, core.ErrNotDir, core.ErrIsDir, core.ErrNotEmpty,
		core.ErrNotLink, core.ErrInvalidName, core.ErrResourceLimit,
		core.ErrBusy, core.ErrBadHandle,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
