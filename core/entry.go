package core

import "io/fs"

// EntryType classifies a directory entry.
type EntryType int

const (
	// EntryOther is any entry that is not a regular file, directory or link,
	// including entries the platform could not classify.
	EntryOther EntryType = iota
	// EntryFile is a regular file.
	EntryFile
	// EntryDir is a directory.
	EntryDir
	// EntrySymlink is a symbolic link.
	EntrySymlink
)

// String returns the lower-case name of the entry type.
func (t EntryType) String() string {
	switch t {
	case EntryFile:
		return "file"
	case EntryDir:
		return "dir"
	case EntrySymlink:
		return "symlink"
	default:
		return "other"
	}
}

// EntryTypeFromMode derives an EntryType from a file mode.
func EntryTypeFromMode(mode fs.FileMode) EntryType {
	switch {
	case mode&fs.ModeSymlink != 0:
		return EntrySymlink
	case mode.IsDir():
		return EntryDir
	case mode.IsRegular():
		return EntryFile
	default:
		return EntryOther
	}
}

// DirEntry is a single directory stream entry.
type DirEntry struct {
	Name string
	Type EntryType
}
