package core

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// CopyFromFS copies all files from a read-only filesystem (typically embed.FS
// or testing/fstest.MapFS) into dstRoot on a backend, preserving the directory
// structure.
//
// The srcRoot parameter specifies the root directory in the source filesystem
// to copy from. Use "." to copy the entire source filesystem. The parent of
// dstRoot must exist. Directories are created with Mkdir in walk order and an
// existing directory is not an error. File permission bits are taken from the
// source.
//
// Example:
//
//	//go:embed testdata/*
//	var fixtures embed.FS
//
//	err := core.CopyFromFS(fixtures, billyfs.NewMemory(), "testdata", "/work")
func CopyFromFS(src fs.FS, dst FS, srcRoot, dstRoot string) error {
	sep := dst.Separator()

	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Destination path relative to srcRoot, with src's '/' separators.
		rel := filePath
		if srcRoot != "." && srcRoot != "" {
			rel = strings.TrimPrefix(strings.TrimPrefix(filePath, srcRoot), "/")
		}
		if rel == "." {
			rel = ""
		}

		target := dstRoot
		if rel != "" {
			target = sep.Concat(append([]string{dstRoot}, strings.Split(rel, "/")...)...)
		}

		if d.IsDir() {
			return mkdir(dst, target)
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		f, err := dst.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	})
}

// mkdir creates name unless it is already a directory. The walk visits a
// directory before its contents, so the parent always exists.
func mkdir(dst FS, name string) error {
	if fi, err := dst.Stat(name); err == nil && fi.IsDir() {
		return nil
	}
	if err := dst.Mkdir(name, 0o755); err != nil && !errors.Is(err, ErrExist) {
		return err
	}
	return nil
}
