// Package osfs implements the core backend on top of the host operating
// system.
//
// The backend is split by platform family with build constraints. Unix
// builds classify errno values, read symbolic links and report capacity
// through statfs; linux and darwin additionally expose a native gather write
// on open files. Windows builds report capacity through GetDiskFreeSpaceEx
// and do not read links, so link resolution on Windows is the identity.
// Every other platform gets the portable subset.
//
// Usage:
//
//	backend := osfs.New()
//	fsys := fsio.New(fsio.WithBackend(backend))
package osfs
