//go:build unix

// File: transport/fifo/fifo_unix.go
// Author: momentics <momentics@gmail.com>

package fifo

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ipc/internal/sysutil"
)

// ensureFifo makes sure a FIFO exists at path and reports whether it was
// created by this call.
func ensureFifo(path string, mode uint32) (bool, error) {
	if sysutil.Exists(path) {
		return false, checkFifo(path)
	}
	err := unix.Mkfifo(path, mode)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, unix.EEXIST):
		// Lost a creation race with a peer.
		return false, checkFifo(path)
	}
	return false, fmt.Errorf("mkfifo: %w", err)
}

func checkFifo(path string) error {
	typ, err := sysutil.FileType(path)
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	if typ != unix.S_IFIFO {
		return fmt.Errorf("%s exists and is not a fifo", path)
	}
	return nil
}

func openFifo(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, fmt.Errorf("open: %w", err)
	}
	return fd, nil
}

func readFd(fd int, p []byte) (int, error) {
	n, err := unix.Read(fd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

func writeFd(fd int, p []byte) (int, error) {
	n, err := unix.Write(fd, p)
	if n < 0 {
		n = 0
	}
	return n, err
}

func closeFd(fd int) error         { return unix.Close(fd) }
func removePath(path string) error { return sysutil.RemoveIfExists(path) }
func wouldBlock(err error) bool    { return sysutil.WouldBlock(err) }
