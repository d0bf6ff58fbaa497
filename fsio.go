package fsio

import (
	"github.com/jmgilman/go/fsio/core"
	"github.com/jmgilman/go/fsio/fspath"
	"github.com/jmgilman/go/fsio/logging"
	"github.com/jmgilman/go/fsio/osfs"
)

// Options contains configuration options for an FS.
type Options struct {
	// Backend performs the primitive filesystem calls.
	// If nil, the host operating system backend is used.
	Backend core.FS

	// Logger receives diagnostics for unexpected backend failures.
	// If nil, logging is disabled.
	Logger *logging.Logger

	// Separator is used by every path operation.
	// If zero, the backend's separator is used.
	Separator fspath.Separator
}

// Option is a functional option for configuring an FS.
type Option func(*Options)

// WithBackend sets the backend. Use billyfs.NewMemory() for an in-memory
// filesystem in tests.
func WithBackend(backend core.FS) Option {
	return func(opts *Options) {
		opts.Backend = backend
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *logging.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithSeparator overrides the path separator.
func WithSeparator(sep fspath.Separator) Option {
	return func(opts *Options) {
		opts.Separator = sep
	}
}

// FS is the portable filesystem layer. It turns backend calls into the
// closed set of error codes defined by the errors package.
//
// FS holds no mutable state and may be shared. The handles it returns may
// not.
type FS struct {
	backend core.FS
	log     *logging.Logger
	sep     fspath.Separator
}

// New creates an FS with the given options.
func New(opts ...Option) *FS {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Backend == nil {
		options.Backend = osfs.New()
	}
	if options.Logger == nil {
		options.Logger = logging.NewNopLogger()
	}
	if options.Separator == 0 {
		options.Separator = options.Backend.Separator()
	}

	return &FS{
		backend: options.Backend,
		log:     options.Logger,
		sep:     options.Separator,
	}
}

// Backend returns the underlying backend.
func (fsys *FS) Backend() core.FS {
	return fsys.backend
}

// Separator returns the separator used for path operations.
func (fsys *FS) Separator() fspath.Separator {
	return fsys.sep
}

// Logger returns the configured logger.
func (fsys *FS) Logger() *logging.Logger {
	return fsys.log
}
