// File: transport/mqueue/mqueue.go
// Author: momentics <momentics@gmail.com>

package mqueue

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/momentics/hioload-ipc/api"
	"github.com/momentics/hioload-ipc/internal/endpoint"
	"github.com/momentics/hioload-ipc/pool"
)

// unlinkQueue is swapped in tests.
var unlinkQueue = mqUnlink

// nameMax mirrors NAME_MAX for queue names.
const nameMax = 255

// Stats is a snapshot of the kernel queue attributes.
type Stats struct {
	Pending        int
	MaxMessages    int
	MaxMessageSize int
}

// Queue is a handle on a named message queue.
type Queue struct {
	mu      sync.RWMutex
	ep      endpoint.Base
	kname   string
	fd      int
	opts    options
	maxMsgs int
	msgSize int
	bufs    *pool.BytePool
}

var _ api.Transport = (*Queue)(nil)

// Open creates (or, with WithUnlinkOnOpen(false), attaches to) the queue
// called name and opens it non-blocking for reading and writing.
func Open(name string, opts ...Option) (*Queue, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	q := &Queue{
		ep:   endpoint.New(Kind, name, o.logger, o.observer),
		fd:   -1,
		opts: o,
	}

	kname, err := kernelName(name)
	if err != nil {
		return nil, q.ep.Done(endpoint.OpOpen, q.ep.Fail(api.ErrCodeInvalidArgument, endpoint.OpOpen, err))
	}
	if o.maxMessages <= 0 || o.maxMessageSize <= 1 {
		err := fmt.Errorf("capacity %d x %d bytes", o.maxMessages, o.maxMessageSize)
		return nil, q.ep.Done(endpoint.OpOpen, q.ep.Fail(api.ErrCodeInvalidArgument, endpoint.OpOpen, err))
	}
	q.kname = kname

	if o.unlinkOnOpen {
		// Stale content from earlier handles is discarded on purpose.
		if err := unlinkQueue(kname); err != nil && !errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("purge: %w", err)
			return nil, q.ep.Done(endpoint.OpOpen, q.ep.Fail(api.ErrCodeSetup, endpoint.OpOpen, err))
		}
	}
	fd, err := mqOpen(kname, o.mode, o.maxMessages, o.maxMessageSize)
	if err != nil {
		return nil, q.ep.Done(endpoint.OpOpen, q.ep.Fail(api.ErrCodeSetup, endpoint.OpOpen, err))
	}
	q.fd = fd

	// An attached queue keeps the attributes it was created with.
	st, err := mqStats(fd)
	if err != nil {
		_ = closeFd(fd)
		q.fd = -1
		return nil, q.ep.Done(endpoint.OpOpen, q.ep.Fail(api.ErrCodeSetup, endpoint.OpOpen, err))
	}
	q.maxMsgs = st.MaxMessages
	q.msgSize = st.MaxMessageSize
	q.bufs = pool.ForSize(q.msgSize)
	q.ep.Opened()
	return q, nil
}

// Unlink removes the queue called name from the kernel namespace. Handles
// already open keep working on the detached queue.
func Unlink(name string) error {
	kname, err := kernelName(name)
	if err != nil {
		return api.NewError(api.ErrCodeInvalidArgument, "unlink", name, err)
	}
	if err := mqUnlink(kname); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return api.NewError(api.ErrCodeFailed, "unlink", name, err)
	}
	return nil
}

// kernelName converts a POSIX queue name ("/name") to the form the kernel
// expects. A missing leading slash is tolerated.
func kernelName(name string) (string, error) {
	kname := strings.TrimPrefix(name, "/")
	switch {
	case kname == "":
		return "", errors.New("empty queue name")
	case strings.Contains(kname, "/"):
		return "", fmt.Errorf("queue name %q contains a slash", name)
	case len(kname) > nameMax:
		return "", fmt.Errorf("queue name longer than %d bytes", nameMax)
	}
	return kname, nil
}

// Name returns the queue name as given to Open.
func (q *Queue) Name() string { return q.ep.Resource() }

// Write enqueues msg. A full queue yields api.ErrQueueFull.
func (q *Queue) Write(msg []byte) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.fd < 0 {
		return q.ep.Done(endpoint.OpWrite, q.ep.Fail(api.ErrCodeClosed, endpoint.OpWrite, nil))
	}
	if len(msg)+1 > q.msgSize {
		err := fmt.Errorf("%d bytes plus terminator exceed %d", len(msg), q.msgSize)
		return q.ep.Done(endpoint.OpWrite, q.ep.Fail(api.ErrCodeTooLarge, endpoint.OpWrite, err))
	}

	frame := make([]byte, len(msg)+1)
	copy(frame, msg)

	var e *api.Error
	if err := mqSend(q.fd, frame, q.opts.priority); err != nil {
		if wouldBlock(err) {
			e = q.ep.Fail(api.ErrCodeQueueFull, endpoint.OpWrite, err)
		} else {
			e = q.ep.Fail(api.ErrCodeFailed, endpoint.OpWrite, err)
		}
	}
	return q.ep.Done(endpoint.OpWrite, e)
}

// Read dequeues the oldest message. An empty queue yields api.ErrEmpty.
func (q *Queue) Read() ([]byte, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.fd < 0 {
		return nil, q.ep.Done(endpoint.OpRead, q.ep.Fail(api.ErrCodeClosed, endpoint.OpRead, nil))
	}

	msg, err := q.bufs.Copy(func(p []byte) (int, error) {
		return mqReceive(q.fd, p)
	})
	if err != nil {
		code := api.ErrCodeFailed
		if wouldBlock(err) {
			code = api.ErrCodeEmpty
		}
		return nil, q.ep.Done(endpoint.OpRead, q.ep.Fail(code, endpoint.OpRead, err))
	}
	if n := len(msg); n > 0 && msg[n-1] == 0 {
		msg = msg[:n-1]
	}
	return msg, q.ep.Done(endpoint.OpRead, nil)
}

// IsOpen reports whether the queue descriptor is valid.
func (q *Queue) IsOpen() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.fd >= 0
}

// Stats queries the kernel for the current queue attributes.
func (q *Queue) Stats() (Stats, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.fd < 0 {
		return Stats{}, q.ep.Fail(api.ErrCodeClosed, "stats", nil)
	}
	st, err := mqStats(q.fd)
	if err != nil {
		return Stats{}, q.ep.Fail(api.ErrCodeFailed, "stats", err)
	}
	return st, nil
}

// Close closes the descriptor. The queue itself is removed only when
// WithUnlinkOnClose(true) was given. Close is idempotent.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.fd < 0 {
		return nil
	}
	var e *api.Error
	if err := closeFd(q.fd); err != nil {
		e = q.ep.Fail(api.ErrCodeFailed, endpoint.OpClose, err)
	}
	q.fd = -1
	if q.opts.unlinkOnClose {
		if err := mqUnlink(q.kname); err != nil && !errors.Is(err, fs.ErrNotExist) && e == nil {
			e = q.ep.Fail(api.ErrCodeFailed, endpoint.OpClose, err)
		}
	}
	q.ep.Closed()
	return q.ep.Done(endpoint.OpClose, e)
}

// Features reports the queue limits in effect.
func (q *Queue) Features() api.TransportFeatures {
	return api.TransportFeatures{
		Kind:           Kind,
		MaxMessageSize: q.msgSize - 1,
		Capacity:       q.maxMsgs,
		Destructive:    true,
		Boundaries:     true,
		UnlinkOnClose:  q.opts.unlinkOnClose,
	}
}
