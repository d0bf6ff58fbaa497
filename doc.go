// Package fsio is a portable filesystem layer: path algebra, file handles
// with queued gather writes, directory scanning, recursive creation and
// deletion, pattern-driven search and disk-space queries, all reporting
// failures with one closed set of error codes.
//
// # Getting Started
//
//	fsys := fsio.New()
//
//	if err := fsys.CreateDirectories("/tmp/work/out"); err != nil {
//	    return err
//	}
//	if err := fsys.WriteStringIntoFile("/tmp/work/out/hello.txt", "hello"); err != nil {
//	    return err
//	}
//	data, err := fsys.ReadFileIntoBuffer("/tmp/work/out/hello.txt")
//
// The host filesystem is the default backend. Any core.FS can be used
// instead, for example an in-memory filesystem in tests:
//
//	fsys := fsio.New(fsio.WithBackend(billyfs.NewMemory()))
//
// # Errors
//
// A nil error is success. Every other error is an errors.PlatformError from
// github.com/jmgilman/go/errors carrying one of the Code constants of this
// package, and can be inspected with Code:
//
//	if err := fsys.DeleteDirectoryIfEmpty(dir); fsio.Code(err) == fsio.CodeNotEmpty {
//	    // leave it
//	}
//
// End of data is reported as the plain io.EOF value, so Reader works with
// io.Copy and friends. Code maps io.EOF to CodeEndOfFile.
//
// # Handles
//
// Reader and Writer own one open file each. Closing a closed handle is an
// error, never a crash. A Writer can queue up to MaxQueuedWrites buffers and
// write them with a single Flush; the queue is empty after every Flush
// regardless of its outcome.
//
//	w, err := fsys.OpenWrite(name)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	_ = w.Queue(header)
//	_ = w.Queue(body)
//	if _, err := w.Flush(); err != nil {
//	    return err
//	}
//
// # Paths
//
// Path operations use the separator of the backend unless WithSeparator is
// given. The fspath package holds the pure path algebra and can be used on
// its own.
//
// # Concurrency
//
// Every operation is synchronous. An FS may be shared between goroutines;
// Reader, Writer and DirScanner values may not. The layer does no locking
// and never retries.
package fsio
