//go:build linux
// +build linux

// File: transport/mqueue/mqueue_linux.go
// Author: momentics <momentics@gmail.com>
//
// Raw mq_* syscalls. The kernel expects queue names without the leading
// slash that the libc wrappers strip.

package mqueue

import (
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ipc/internal/sysutil"
)

// mqAttr matches struct mq_attr: four longs and four reserved longs.
type mqAttr struct {
	Flags   int
	Maxmsg  int
	Msgsize int
	Curmsgs int
	_       [4]int
}

func mqOpen(name string, mode uint32, maxMsgs, msgSize int) (int, error) {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return -1, err
	}
	attr := mqAttr{Maxmsg: maxMsgs, Msgsize: msgSize}
	flags := unix.O_CREAT | unix.O_RDWR | unix.O_NONBLOCK | unix.O_CLOEXEC
	r, _, errno := unix.Syscall6(unix.SYS_MQ_OPEN,
		uintptr(unsafe.Pointer(p)), uintptr(flags), uintptr(mode), uintptr(unsafe.Pointer(&attr)), 0, 0)
	if errno != 0 {
		return -1, errno
	}
	return int(r), nil
}

func mqUnlink(name string) error {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return err
	}
	_, _, errno := unix.Syscall(unix.SYS_MQ_UNLINK, uintptr(unsafe.Pointer(p)), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

func mqSend(fd int, msg []byte, prio uint) error {
	_, _, errno := unix.Syscall6(unix.SYS_MQ_TIMEDSEND,
		uintptr(fd), uintptr(unsafe.Pointer(&msg[0])), uintptr(len(msg)), uintptr(prio), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

func mqReceive(fd int, buf []byte) (int, error) {
	var prio uint32
	r, _, errno := unix.Syscall6(unix.SYS_MQ_TIMEDRECEIVE,
		uintptr(fd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)), uintptr(unsafe.Pointer(&prio)), 0, 0)
	if errno != 0 {
		return 0, errno
	}
	return int(r), nil
}

func mqStats(fd int) (Stats, error) {
	var attr mqAttr
	_, _, errno := unix.Syscall(unix.SYS_MQ_GETSETATTR, uintptr(fd), 0, uintptr(unsafe.Pointer(&attr)))
	if errno != 0 {
		return Stats{}, errno
	}
	return Stats{
		Pending:        attr.Curmsgs,
		MaxMessages:    attr.Maxmsg,
		MaxMessageSize: attr.Msgsize,
	}, nil
}

func closeFd(fd int) error { return unix.Close(fd) }

func wouldBlock(err error) bool { return sysutil.WouldBlock(err) }
