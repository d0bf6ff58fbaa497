package fsio

import (
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/fsio/core"
)

// codeTable maps backend error kinds to codes. Kinds that are absent map to
// CodeFail and are logged.
type codeTable map[error]errors.ErrorCode

var (
	pathCodes = codeTable{
		core.ErrNotExist:   CodeNotAFile,
		core.ErrNotDir:     CodeNotAFile,
		core.ErrPermission: CodeNoPerm,
	}

	linkCodes = codeTable{
		core.ErrNotExist:    CodeNotAFile,
		core.ErrNotDir:      CodeNotAFile,
		core.ErrPermission:  CodeNoPerm,
		core.ErrInvalidName: CodeParam,
	}

	deleteCodes = codeTable{
		core.ErrNotExist:   CodeNotAFile,
		core.ErrNotDir:     CodeNotAFile,
		core.ErrPermission: CodeNoPerm,
		core.ErrBusy:       CodeNoPerm,
	}

	dirOpenCodes = codeTable{
		core.ErrNotExist:      CodeNotAFile,
		core.ErrNotDir:        CodeNotAFile,
		core.ErrPermission:    CodeNoPerm,
		core.ErrInvalidName:   CodeParam,
		core.ErrResourceLimit: CodeInvalidState,
	}

	dirCloseCodes = codeTable{
		core.ErrBadHandle: CodeInvalidState,
	}
)

// classify converts a backend error into a coded error using table.
func (fsys *FS) classify(op, path string, err error, table codeTable) error {
	code, ok := table[core.KindOf(err)]
	if !ok {
		code = CodeFail
		fsys.log.Error(op+" failed", "path", path, "error", err)
	}
	return wrapError(err, code, op, path)
}

// wrapError attaches code to a backend error. Descriptor exhaustion is the
// one transient cause and is marked retryable.
func wrapError(err error, code errors.ErrorCode, op, path string) error {
	perr := errors.WrapWithContext(err, code, op+" "+path, map[string]interface{}{
		"op":   op,
		"path": path,
	})
	if core.KindOf(err) == core.ErrResourceLimit {
		perr = errors.WithClassification(perr, errors.ClassificationRetryable)
	}
	return perr
}

// newError creates a coded error that has no backend cause.
func newError(code errors.ErrorCode, op, path, msg string) error {
	return errors.WithContextMap(errors.New(code, op+" "+path+": "+msg), map[string]interface{}{
		"op":   op,
		"path": path,
	})
}
