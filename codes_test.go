package fsio

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio/core"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errors.ErrorCode
	}{
		{"nil", nil, errors.CodeUnknown},
		{"end of file", io.EOF, CodeEndOfFile},
		{"wrapped end of file", fmt.Errorf("read loop: %w", io.EOF), CodeEndOfFile},
		{"coded", errors.New(CodeNotEmpty, "busy"), CodeNotEmpty},
		{"wrapped coded", fmt.Errorf("outer: %w", errors.New(CodeParam, "bad")), CodeParam},
		{"backend", wrapError(kindErr("open", "/x", core.ErrNotExist), CodeNotAFile, "open", "/x"), CodeNotAFile},
		{"foreign", io.ErrUnexpectedEOF, errors.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestIsEndOfFile(t *testing.T) {
	require.True(t, IsEndOfFile(io.EOF))
	require.False(t, IsEndOfFile(nil))
	require.False(t, IsEndOfFile(errors.New(CodeReadFail, "read")))
}

func TestWrapError_Classification(t *testing.T) {
	transient := wrapError(kindErr("open", "/f", core.ErrResourceLimit), CodeInvalidState, "open", "/f")
	require.True(t, errors.IsRetryable(transient))
	require.Equal(t, errors.ClassificationRetryable, errors.GetClassification(transient))

	permanent := wrapError(kindErr("open", "/f", core.ErrPermission), CodeNoPerm, "open", "/f")
	require.False(t, errors.IsRetryable(permanent))
	require.Equal(t, "/f", contextOf(t, permanent)["path"])
	require.Equal(t, "open", contextOf(t, permanent)["op"])
}
