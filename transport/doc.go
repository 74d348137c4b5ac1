// Package transport
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Adapters over api.Transport. The backends live in sub-packages:
//
//	mqueue    POSIX message queue
//	fifo      named pipe
//	shm       POSIX shared memory region
//	unixgram  UNIX domain datagram socket
//
// Typed binds a backend to a value codec; Conn exposes one as an
// io.ReadWriteCloser. Neither adds buffering, retries or locking.
package transport
