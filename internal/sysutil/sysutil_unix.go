//go:build unix

// File: internal/sysutil/sysutil_unix.go
// Author: momentics <momentics@gmail.com>

package sysutil

import (
	"errors"

	"golang.org/x/sys/unix"
)

// WouldBlock reports EAGAIN/EWOULDBLOCK.
func WouldBlock(err error) bool {
	return errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK)
}

// Exists reports whether a filesystem entry of any type is present at path.
// Symlinks are not followed.
func Exists(path string) bool {
	var st unix.Stat_t
	return unix.Lstat(path, &st) == nil
}

// FileType returns the S_IFMT bits of the entry at path.
func FileType(path string) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return uint32(st.Mode) & unix.S_IFMT, nil
}

// Size returns the size of the object behind fd.
func Size(fd int) (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return 0, err
	}
	return st.Size, nil
}

// RemoveIfExists unlinks path, ignoring ENOENT.
func RemoveIfExists(path string) error {
	if err := unix.Unlink(path); err != nil && !errors.Is(err, unix.ENOENT) {
		return err
	}
	return nil
}
