// File: transport/fifo/fifo.go
// Author: momentics <momentics@gmail.com>

package fifo

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-ipc/api"
	"github.com/momentics/hioload-ipc/internal/endpoint"
	"github.com/momentics/hioload-ipc/pool"
)

// Pipe is a handle on a named FIFO.
type Pipe struct {
	mu      sync.RWMutex
	ep      endpoint.Base
	fd      int
	created bool
	opts    options
	bufs    *pool.BytePool
}

var _ api.Transport = (*Pipe)(nil)

// Open attaches to the FIFO at path, creating it when absent. An existing
// entry that is not a FIFO is rejected.
func Open(path string, opts ...Option) (*Pipe, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := &Pipe{
		ep:   endpoint.New(Kind, path, o.logger, o.observer),
		fd:   -1,
		opts: o,
	}
	if path == "" || o.maxMessageSize <= 0 || o.maxMessageSize > MaxMessageSize {
		err := fmt.Errorf("path %q, max message size %d", path, o.maxMessageSize)
		return nil, p.ep.Done(endpoint.OpOpen, p.ep.Fail(api.ErrCodeInvalidArgument, endpoint.OpOpen, err))
	}

	created, err := ensureFifo(path, o.mode)
	if err != nil {
		return nil, p.ep.Done(endpoint.OpOpen, p.ep.Fail(api.ErrCodeSetup, endpoint.OpOpen, err))
	}
	fd, err := openFifo(path)
	if err != nil {
		if created {
			_ = removePath(path)
		}
		return nil, p.ep.Done(endpoint.OpOpen, p.ep.Fail(api.ErrCodeSetup, endpoint.OpOpen, err))
	}
	p.fd = fd
	p.created = created
	p.bufs = pool.ForSize(o.maxMessageSize)
	p.ep.Opened()
	return p, nil
}

// Path returns the FIFO path.
func (p *Pipe) Path() string { return p.ep.Resource() }

// Created reports whether this handle created the FIFO.
func (p *Pipe) Created() bool { return p.created }

// Write performs one non-blocking write of msg. The whole message must be
// accepted at once: a full pipe yields api.ErrNotReady and a partial write
// api.ErrShortWrite.
func (p *Pipe) Write(msg []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.fd < 0 {
		return p.ep.Done(endpoint.OpWrite, p.ep.Fail(api.ErrCodeClosed, endpoint.OpWrite, nil))
	}
	if len(msg) > p.opts.maxMessageSize {
		err := fmt.Errorf("%d bytes exceed %d", len(msg), p.opts.maxMessageSize)
		return p.ep.Done(endpoint.OpWrite, p.ep.Fail(api.ErrCodeTooLarge, endpoint.OpWrite, err))
	}

	var e *api.Error
	n, err := writeFd(p.fd, msg)
	switch {
	case err != nil && wouldBlock(err):
		e = p.ep.Fail(api.ErrCodeNotReady, endpoint.OpWrite, err)
	case err != nil:
		e = p.ep.Fail(api.ErrCodeFailed, endpoint.OpWrite, err)
	case n != len(msg):
		e = p.ep.Fail(api.ErrCodeShortWrite, endpoint.OpWrite, fmt.Errorf("%d of %d bytes", n, len(msg)))
	}
	return p.ep.Done(endpoint.OpWrite, e)
}

// Read performs one non-blocking read. Nothing buffered, or a zero-byte
// read, yields api.ErrEmpty.
func (p *Pipe) Read() ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.fd < 0 {
		return nil, p.ep.Done(endpoint.OpRead, p.ep.Fail(api.ErrCodeClosed, endpoint.OpRead, nil))
	}

	msg, err := p.bufs.Copy(func(b []byte) (int, error) {
		return readFd(p.fd, b)
	})
	switch {
	case err != nil && wouldBlock(err):
		return nil, p.ep.Done(endpoint.OpRead, p.ep.Fail(api.ErrCodeEmpty, endpoint.OpRead, err))
	case err != nil:
		return nil, p.ep.Done(endpoint.OpRead, p.ep.Fail(api.ErrCodeFailed, endpoint.OpRead, err))
	case len(msg) == 0:
		return nil, p.ep.Done(endpoint.OpRead, p.ep.Fail(api.ErrCodeEmpty, endpoint.OpRead, nil))
	}
	return msg, p.ep.Done(endpoint.OpRead, nil)
}

// IsOpen reports whether the descriptor is valid.
func (p *Pipe) IsOpen() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fd >= 0
}

// Close closes the descriptor and, unless WithUnlinkOnClose(false) was
// given, removes the FIFO path. Close is idempotent.
func (p *Pipe) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fd < 0 {
		return nil
	}
	var e *api.Error
	if err := closeFd(p.fd); err != nil {
		e = p.ep.Fail(api.ErrCodeFailed, endpoint.OpClose, err)
	}
	p.fd = -1
	if p.opts.unlinkOnClose {
		if err := removePath(p.ep.Resource()); err != nil && e == nil {
			e = p.ep.Fail(api.ErrCodeFailed, endpoint.OpClose, err)
		}
	}
	p.ep.Closed()
	return p.ep.Done(endpoint.OpClose, e)
}

// Features reports the pipe limits in effect.
func (p *Pipe) Features() api.TransportFeatures {
	return api.TransportFeatures{
		Kind:           Kind,
		MaxMessageSize: p.opts.maxMessageSize,
		Destructive:    true,
		UnlinkOnClose:  p.opts.unlinkOnClose,
	}
}
