// Package core defines the contract between the fsio layer and the
// filesystem backends it runs on.
//
// A backend implements FS, a deliberately small set of primitive operations
// (open, stat, mkdir, unlink, rmdir, directory streams). Everything else in
// fsio is built from these primitives, so a new backend only needs to supply
// them.
//
// # Optional Capabilities
//
// Features that only some platforms provide are modeled as optional
// interfaces discovered by type assertion:
//
//   - VectorWriter: a single gather write of several buffers (File)
//   - LinkReader: reading symbolic link targets (FS)
//   - Linker: creating symbolic links (FS)
//   - SpaceReporter: filesystem capacity statistics (FS)
//   - Truncater and Syncer: truncation and durable flush (File)
//
// For example:
//
//	if lr, ok := backend.(core.LinkReader); ok {
//	    target, err := lr.Readlink(path)
//	}
//
// # Errors
//
// Backends report failures with errors that match one of the sentinel kinds
// declared in this package under errors.Is, usually by returning a *SysError.
// The fsio layer maps those kinds to its result codes; it never inspects
// platform error numbers itself.
//
// # Implementations
//
//   - github.com/jmgilman/go/fsio/osfs - the host operating system
//   - github.com/jmgilman/go/fsio/billyfs - go-billy filesystems, including
//     an in-memory one
package core
