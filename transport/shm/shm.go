// File: transport/shm/shm.go
// Author: momentics <momentics@gmail.com>

package shm

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/momentics/hioload-ipc/api"
	"github.com/momentics/hioload-ipc/internal/endpoint"
)

// Segment is a handle on a mapped shared memory object.
type Segment struct {
	// mu guards the handle lifetime only. Region contents are never locked.
	mu   sync.RWMutex
	ep   endpoint.Base
	fd   int
	mem  []byte
	opts options
}

var _ api.Transport = (*Segment)(nil)

// Open creates or opens the shared memory object called name, resizes it
// to the region size when its current size differs and maps it shared
// read-write.
func Open(name string, opts ...Option) (*Segment, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Segment{
		ep:   endpoint.New(Kind, name, o.logger, o.observer),
		fd:   -1,
		opts: o,
	}
	if err := checkName(name); err != nil || o.size <= 1 {
		if err == nil {
			err = fmt.Errorf("region size %d", o.size)
		}
		return nil, s.ep.Done(endpoint.OpOpen, s.ep.Fail(api.ErrCodeInvalidArgument, endpoint.OpOpen, err))
	}

	fd, mem, err := mapRegion(name, o.size, o.mode)
	if err != nil {
		return nil, s.ep.Done(endpoint.OpOpen, s.ep.Fail(api.ErrCodeSetup, endpoint.OpOpen, err))
	}
	s.fd = fd
	s.mem = mem
	s.ep.Opened()
	return s, nil
}

// Unlink removes the object called name. Existing mappings stay valid.
func Unlink(name string) error {
	if err := checkName(name); err != nil {
		return api.NewError(api.ErrCodeInvalidArgument, "unlink", name, err)
	}
	if err := unlinkObject(name); err != nil {
		return api.NewError(api.ErrCodeFailed, "unlink", name, err)
	}
	return nil
}

func checkName(name string) error {
	n := strings.TrimPrefix(name, "/")
	switch {
	case n == "" || n == "." || n == "..":
		return fmt.Errorf("invalid object name %q", name)
	case strings.Contains(n, "/"):
		return fmt.Errorf("object name %q contains a slash", name)
	}
	return nil
}

// Name returns the object name as given to Open.
func (s *Segment) Name() string { return s.ep.Resource() }

// Size returns the mapped region size.
func (s *Segment) Size() int { return s.opts.size }

// Write replaces the region contents with msg and a NUL terminator. A
// message that does not fit fails before the region is touched.
func (s *Segment) Write(msg []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mem == nil {
		return s.ep.Done(endpoint.OpWrite, s.ep.Fail(api.ErrCodeClosed, endpoint.OpWrite, nil))
	}
	if len(msg)+1 > len(s.mem) {
		err := fmt.Errorf("%d bytes plus terminator exceed region of %d", len(msg), len(s.mem))
		return s.ep.Done(endpoint.OpWrite, s.ep.Fail(api.ErrCodeTooLarge, endpoint.OpWrite, err))
	}
	clear(s.mem)
	copy(s.mem, msg)
	return s.ep.Done(endpoint.OpWrite, nil)
}

// Read returns a copy of the region up to its first NUL. A never-written
// region reads as an empty message.
func (s *Segment) Read() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mem == nil {
		return nil, s.ep.Done(endpoint.OpRead, s.ep.Fail(api.ErrCodeClosed, endpoint.OpRead, nil))
	}
	n := bytes.IndexByte(s.mem, 0)
	if n < 0 {
		// A foreign writer filled the region without a terminator.
		n = len(s.mem)
	}
	out := make([]byte, n)
	copy(out, s.mem[:n])
	return out, s.ep.Done(endpoint.OpRead, nil)
}

// IsOpen reports whether both the descriptor and the mapping are valid.
func (s *Segment) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fd >= 0 && s.mem != nil
}

// Close unmaps the region, closes the descriptor and, unless
// WithUnlinkOnClose(false) was given, unlinks the object. Close is
// idempotent.
func (s *Segment) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fd < 0 && s.mem == nil {
		return nil
	}
	var e *api.Error
	fail := func(err error) {
		if err != nil && e == nil {
			e = s.ep.Fail(api.ErrCodeFailed, endpoint.OpClose, err)
		}
	}
	if s.mem != nil {
		fail(unmap(s.mem))
		s.mem = nil
	}
	if s.fd >= 0 {
		fail(closeFd(s.fd))
		s.fd = -1
	}
	if s.opts.unlinkOnClose {
		fail(unlinkObject(s.ep.Resource()))
	}
	s.ep.Closed()
	return s.ep.Done(endpoint.OpClose, e)
}

// Features reports the region limits in effect.
func (s *Segment) Features() api.TransportFeatures {
	return api.TransportFeatures{
		Kind:           Kind,
		MaxMessageSize: s.opts.size - 1,
		Capacity:       1,
		UnlinkOnClose:  s.opts.unlinkOnClose,
	}
}
