// Package billyfs provides a go-billy-backed implementation of the core.FS
// backend contract.
//
// This package wraps go-billy's memfs (in-memory) and osfs (bound to a base
// directory) implementations. go-billy reports some failures with ad hoc
// error values, so the adapter checks entry types up front and reports the
// same core error kinds the native backend does.
//
// Usage:
//
//	// In-memory filesystem, handy for tests
//	fsys := fsio.New(fsio.WithBackend(billyfs.NewMemory()))
//
//	// Local directory exposed as the root of the filesystem
//	fsys := fsio.New(fsio.WithBackend(billyfs.NewLocal("/srv/data")))
//
//	// Unwrap for go-git integration
//	bfs := backend.Unwrap()
//
// Neither variant supports gather writes or capacity queries, and both
// report "/" as their working directory.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines to the
// extent the wrapped billy.Filesystem is. File handles are not safe for
// concurrent use.
package billyfs
