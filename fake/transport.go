// Package fake
// Author: momentics <momentics@gmail.com>
//
// In-memory transport for testing code built on api.Transport without
// touching OS resources. It behaves like a bounded message queue and can be
// told to fail specific operations.

package fake

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ipc/api"
)

// Kind labels the fake transport in Features.
const Kind = "fake"

// Transport is a bounded in-memory message queue implementing api.Transport.
type Transport struct {
	mu         sync.Mutex
	q          *queue.Queue
	capacity   int
	maxSize    int
	closed     bool
	writeError error
	readError  error
	closeError error
	writes     int
	reads      int
}

var _ api.Transport = (*Transport)(nil)

// NewTransport creates a fake holding up to capacity messages of at most
// maxSize bytes. A capacity of 0 means unbounded.
func NewTransport(capacity, maxSize int) *Transport {
	return &Transport{
		q:        queue.New(),
		capacity: capacity,
		maxSize:  maxSize,
	}
}

// Write implements api.Transport.Write.
func (t *Transport) Write(msg []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writes++

	switch {
	case t.closed:
		return api.NewError(api.ErrCodeClosed, "write", Kind, nil)
	case t.writeError != nil:
		return t.writeError
	case t.maxSize > 0 && len(msg) > t.maxSize:
		return api.NewError(api.ErrCodeTooLarge, "write", Kind, nil)
	case t.capacity > 0 && t.q.Length() >= t.capacity:
		return api.NewError(api.ErrCodeQueueFull, "write", Kind, nil)
	}

	cp := make([]byte, len(msg))
	copy(cp, msg)
	t.q.Add(cp)
	return nil
}

// Read implements api.Transport.Read.
func (t *Transport) Read() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reads++

	switch {
	case t.closed:
		return nil, api.NewError(api.ErrCodeClosed, "read", Kind, nil)
	case t.readError != nil:
		return nil, t.readError
	case t.q.Length() == 0:
		return nil, api.NewError(api.ErrCodeEmpty, "read", Kind, nil)
	}
	return t.q.Remove().([]byte), nil
}

// IsOpen implements api.Transport.IsOpen.
func (t *Transport) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.closed
}

// Close implements api.Transport.Close.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closeError != nil {
		return t.closeError
	}
	t.closed = true
	return nil
}

// Features implements api.Transport.Features.
func (t *Transport) Features() api.TransportFeatures {
	return api.TransportFeatures{
		Kind:           Kind,
		MaxMessageSize: t.maxSize,
		Capacity:       t.capacity,
		Destructive:    true,
		Boundaries:     true,
	}
}

// SetWriteError makes every Write return err until reset with nil.
func (t *Transport) SetWriteError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.writeError = err
}

// SetReadError makes every Read return err until reset with nil.
func (t *Transport) SetReadError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.readError = err
}

// SetCloseError makes Close return err.
func (t *Transport) SetCloseError(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closeError = err
}

// Pending returns the number of queued messages.
func (t *Transport) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.q.Length()
}

// Calls returns how many Write and Read calls were made.
func (t *Transport) Calls() (writes, reads int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writes, t.reads
}
