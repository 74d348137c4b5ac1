// File: transport/unixgram/unixgram.go
// Author: momentics <momentics@gmail.com>

package unixgram

import (
	"errors"
	"fmt"
	"sync"

	"github.com/momentics/hioload-ipc/api"
	"github.com/momentics/hioload-ipc/internal/endpoint"
	"github.com/momentics/hioload-ipc/pool"
)

var errTruncated = errors.New("datagram exceeds receive buffer")

// Socket is a datagram socket handle in the server or client role.
type Socket struct {
	mu     sync.RWMutex
	ep     endpoint.Base
	role   Role
	fd     int
	unlink bool
	opts   options
	bufs   *pool.BytePool
}

var _ api.Transport = (*Socket)(nil)

// Listen opens a server socket bound to the well-known path.
func Listen(opts ...Option) (*Socket, error) { return Open(RoleServer, opts...) }

// Dial opens an unbound client socket that sends to the well-known path.
func Dial(opts ...Option) (*Socket, error) { return Open(RoleClient, opts...) }

// Open creates a non-blocking datagram socket. A server removes a stale
// socket left at the path and binds it.
func Open(role Role, opts ...Option) (*Socket, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Socket{
		ep:     endpoint.New(Kind, o.path, o.logger, o.observer),
		role:   role,
		fd:     -1,
		unlink: role == RoleServer,
		opts:   o,
	}
	if o.unlinkOnClose != nil {
		s.unlink = *o.unlinkOnClose
	}
	if o.path == "" || o.maxMessageSize <= 0 {
		err := fmt.Errorf("path %q, max message size %d", o.path, o.maxMessageSize)
		return nil, s.ep.Done(endpoint.OpOpen, s.ep.Fail(api.ErrCodeInvalidArgument, endpoint.OpOpen, err))
	}

	fd, err := openSocket(o.path, role == RoleServer)
	if err != nil {
		return nil, s.ep.Done(endpoint.OpOpen, s.ep.Fail(api.ErrCodeSetup, endpoint.OpOpen, err))
	}
	s.fd = fd
	s.bufs = pool.ForSize(o.maxMessageSize)
	s.ep.Opened()
	return s, nil
}

// Role returns the handle role.
func (s *Socket) Role() Role { return s.role }

// Path returns the well-known socket path.
func (s *Socket) Path() string { return s.ep.Resource() }

// PeerPresent reports whether a filesystem entry exists at the socket path.
func (s *Socket) PeerPresent() bool { return pathExists(s.ep.Resource()) }

// Write sends msg as one datagram to the well-known path. When nothing is
// bound there yet, api.ErrPeerNotPresent is returned without sending.
func (s *Socket) Write(msg []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fd < 0 {
		return s.ep.Done(endpoint.OpWrite, s.ep.Fail(api.ErrCodeClosed, endpoint.OpWrite, nil))
	}
	if len(msg) > s.opts.maxMessageSize {
		err := fmt.Errorf("%d bytes exceed %d", len(msg), s.opts.maxMessageSize)
		return s.ep.Done(endpoint.OpWrite, s.ep.Fail(api.ErrCodeTooLarge, endpoint.OpWrite, err))
	}
	if !pathExists(s.ep.Resource()) {
		return s.ep.Done(endpoint.OpWrite, s.ep.Fail(api.ErrCodePeerNotPresent, endpoint.OpWrite, nil))
	}

	var e *api.Error
	if err := sendTo(s.fd, msg, s.ep.Resource()); err != nil {
		switch {
		case wouldBlock(err):
			e = s.ep.Fail(api.ErrCodeNotReady, endpoint.OpWrite, err)
		case refused(err):
			// stale socket file with nothing bound behind it
			e = s.ep.Fail(api.ErrCodePeerNotPresent, endpoint.OpWrite, err)
		default:
			e = s.ep.Fail(api.ErrCodeFailed, endpoint.OpWrite, err)
		}
	}
	return s.ep.Done(endpoint.OpWrite, e)
}

// Read receives one datagram. Nothing queued yields api.ErrEmpty; a
// datagram larger than the configured bound is dropped and reported as
// api.ErrMessageTooLarge.
func (s *Socket) Read() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fd < 0 {
		return nil, s.ep.Done(endpoint.OpRead, s.ep.Fail(api.ErrCodeClosed, endpoint.OpRead, nil))
	}

	msg, err := s.bufs.Copy(func(b []byte) (int, error) {
		return recv(s.fd, b)
	})
	if err != nil {
		code := api.ErrCodeFailed
		switch {
		case wouldBlock(err):
			code = api.ErrCodeEmpty
		case errors.Is(err, errTruncated):
			code = api.ErrCodeTooLarge
		}
		return nil, s.ep.Done(endpoint.OpRead, s.ep.Fail(code, endpoint.OpRead, err))
	}
	return msg, s.ep.Done(endpoint.OpRead, nil)
}

// IsOpen reports whether the socket descriptor is valid.
func (s *Socket) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fd >= 0
}

// Close closes the socket and, for a server, unlinks the path. Close is
// idempotent.
func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fd < 0 {
		return nil
	}
	var e *api.Error
	if err := closeFd(s.fd); err != nil {
		e = s.ep.Fail(api.ErrCodeFailed, endpoint.OpClose, err)
	}
	s.fd = -1
	if s.unlink {
		if err := removePath(s.ep.Resource()); err != nil && e == nil {
			e = s.ep.Fail(api.ErrCodeFailed, endpoint.OpClose, err)
		}
	}
	s.ep.Closed()
	return s.ep.Done(endpoint.OpClose, e)
}

// Features reports the socket limits in effect.
func (s *Socket) Features() api.TransportFeatures {
	return api.TransportFeatures{
		Kind:           Kind,
		MaxMessageSize: s.opts.maxMessageSize,
		Destructive:    true,
		Boundaries:     true,
		UnlinkOnClose:  s.unlink,
	}
}
