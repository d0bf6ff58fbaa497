package fsio

import (
	stderrors "errors"
	"io"

	"github.com/jmgilman/go/errors"
)

// Error codes returned by fsio operations. Every non-nil error from this
// package carries exactly one of them.
const (
	// CodeFileOpen means a path could not be opened.
	CodeFileOpen errors.ErrorCode = "FILE_OPEN"

	// CodeReadFail means a read transferred no data for a reason other than
	// end of file.
	CodeReadFail errors.ErrorCode = "READ_FAIL"

	// CodeWriteFail means a write or flush failed or was short.
	CodeWriteFail errors.ErrorCode = "WRITE_FAIL"

	// CodeBadSeek means a seek was rejected by the backend.
	CodeBadSeek errors.ErrorCode = "BAD_SEEK"

	// CodeInvalidState means a handle was used after close, or the backend
	// ran out of a resource such as descriptors.
	CodeInvalidState errors.ErrorCode = "INVALID_STATE"

	// CodeEndOfFile is the terminal condition of read loops and directory
	// streams.
	CodeEndOfFile errors.ErrorCode = "END_OF_FILE"

	// CodeNotAFile means a path does not exist or is not of the expected
	// type.
	CodeNotAFile errors.ErrorCode = "NOT_A_FILE"

	// CodeNoPerm means the backend denied access.
	CodeNoPerm errors.ErrorCode = "NO_PERMISSION"

	// CodeDirCreate means a directory could not be created.
	CodeDirCreate errors.ErrorCode = "DIR_CREATE"

	// CodeNotEmpty means a directory still has entries.
	CodeNotEmpty errors.ErrorCode = "NOT_EMPTY"

	// CodeParam means an argument was rejected before reaching the backend.
	CodeParam errors.ErrorCode = "PARAMETER"

	// CodeAlloc means a size limit or buffer bound was exceeded.
	CodeAlloc errors.ErrorCode = "ALLOC"

	// CodeFail is the fallback for backend failures with no better code.
	CodeFail errors.ErrorCode = "FAIL"
)

// Code returns the fsio code carried by err. End of data is reported as the
// plain io.EOF value so readers keep the io.Reader contract; Code maps it to
// CodeEndOfFile. A nil or foreign error yields errors.CodeUnknown.
func Code(err error) errors.ErrorCode {
	if err != nil && stderrors.Is(err, io.EOF) {
		return CodeEndOfFile
	}
	return errors.GetCode(err)
}

// IsEndOfFile reports whether err ends a read loop or a directory stream
// rather than signalling a failure.
func IsEndOfFile(err error) bool {
	return Code(err) == CodeEndOfFile
}
