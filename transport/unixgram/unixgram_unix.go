//go:build unix

// File: transport/unixgram/unixgram_unix.go
// Author: momentics <momentics@gmail.com>

package unixgram

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ipc/internal/sysutil"
)

func openSocket(path string, bind bool) (int, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
	if err != nil {
		return -1, fmt.Errorf("socket: %w", err)
	}
	unix.CloseOnExec(fd)
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("set nonblock: %w", err)
	}
	if !bind {
		return fd, nil
	}

	if sysutil.Exists(path) {
		typ, err := sysutil.FileType(path)
		if err == nil && typ != unix.S_IFSOCK {
			unix.Close(fd)
			return -1, fmt.Errorf("%s exists and is not a socket", path)
		}
		if err := sysutil.RemoveIfExists(path); err != nil {
			unix.Close(fd)
			return -1, fmt.Errorf("remove stale socket: %w", err)
		}
	}
	if err := unix.Bind(fd, &unix.SockaddrUnix{Name: path}); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("bind: %w", err)
	}
	return fd, nil
}

func sendTo(fd int, msg []byte, path string) error {
	return unix.Sendto(fd, msg, 0, &unix.SockaddrUnix{Name: path})
}

// recv takes one datagram. A datagram longer than p is consumed and
// reported as errTruncated.
func recv(fd int, p []byte) (int, error) {
	n, _, flags, _, err := unix.Recvmsg(fd, p, nil, 0)
	if err != nil {
		return 0, err
	}
	if flags&unix.MSG_TRUNC != 0 {
		return 0, errTruncated
	}
	return n, nil
}

func pathExists(path string) bool  { return sysutil.Exists(path) }
func closeFd(fd int) error         { return unix.Close(fd) }
func removePath(path string) error { return sysutil.RemoveIfExists(path) }
func wouldBlock(err error) bool    { return sysutil.WouldBlock(err) }
func refused(err error) bool       { return errors.Is(err, unix.ECONNREFUSED) }
