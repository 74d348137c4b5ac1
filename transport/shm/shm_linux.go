//go:build linux
// +build linux

// File: transport/shm/shm_linux.go
// Author: momentics <momentics@gmail.com>
//
// shm_open(3) on Linux is a regular file under /dev/shm; this file does the
// same with plain syscalls.

package shm

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ipc/internal/sysutil"
)

// shmDir is where glibc places POSIX shared memory objects.
const shmDir = "/dev/shm/"

func objectPath(name string) string {
	return shmDir + strings.TrimPrefix(name, "/")
}

func mapRegion(name string, size int, mode uint32) (int, []byte, error) {
	fd, err := unix.Open(objectPath(name), unix.O_CREAT|unix.O_RDWR|unix.O_NOFOLLOW|unix.O_CLOEXEC, mode)
	if err != nil {
		return -1, nil, fmt.Errorf("shm_open: %w", err)
	}
	cur, err := sysutil.Size(fd)
	if err != nil {
		unix.Close(fd)
		return -1, nil, fmt.Errorf("fstat: %w", err)
	}
	if cur != int64(size) {
		if err := unix.Ftruncate(fd, int64(size)); err != nil {
			unix.Close(fd)
			return -1, nil, fmt.Errorf("ftruncate: %w", err)
		}
	}
	mem, err := unix.Mmap(fd, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		unix.Close(fd)
		return -1, nil, fmt.Errorf("mmap: %w", err)
	}
	return fd, mem, nil
}

func unlinkObject(name string) error {
	return sysutil.RemoveIfExists(objectPath(name))
}

func unmap(mem []byte) error { return unix.Munmap(mem) }
func closeFd(fd int) error   { return unix.Close(fd) }
