// File: transport/conn.go
// Author: momentics <momentics@gmail.com>

package transport

import (
	"io"

	"github.com/momentics/hioload-ipc/api"
)

// Conn adapts a message transport to io.ReadWriteCloser. Each Write is one
// message and each Read returns at most one message; callers keep the
// non-blocking semantics and see api errors such as api.ErrEmpty.
type Conn struct {
	tr api.Transport
}

var _ io.ReadWriteCloser = (*Conn)(nil)

// NewConn wraps tr.
func NewConn(tr api.Transport) *Conn {
	return &Conn{tr: tr}
}

// Read copies the next message into p. A message longer than p is
// consumed and reported as io.ErrShortBuffer.
func (c *Conn) Read(p []byte) (int, error) {
	msg, err := c.tr.Read()
	if err != nil {
		return 0, err
	}
	n := copy(p, msg)
	if n < len(msg) {
		return n, io.ErrShortBuffer
	}
	return n, nil
}

// Write sends p as a single message.
func (c *Conn) Write(p []byte) (int, error) {
	if err := c.tr.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close closes the underlying transport.
func (c *Conn) Close() error {
	return c.tr.Close()
}
