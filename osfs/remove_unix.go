//go:build unix

package osfs

import "golang.org/x/sys/unix"

func unlink(name string) error {
	for {
		err := unix.Unlink(name)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return classify("unlink", name, err)
		}
		return nil
	}
}

func rmdir(name string) error {
	for {
		err := unix.Rmdir(name)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return classify("rmdir", name, err)
		}
		return nil
	}
}
