// File: transport/typed.go
// Author: momentics <momentics@gmail.com>

package transport

import (
	"github.com/momentics/hioload-ipc/api"
)

// Typed writes and reads values of T through a byte-level transport.
type Typed[T any] struct {
	tr    api.Transport
	codec api.Codec[T]
}

// NewTyped binds tr to codec c.
func NewTyped[T any](tr api.Transport, c api.Codec[T]) *Typed[T] {
	return &Typed[T]{tr: tr, codec: c}
}

// Write encodes v and writes it as one message.
func (t *Typed[T]) Write(v T) error {
	b, err := t.codec.Encode(v)
	if err != nil {
		return err
	}
	return t.tr.Write(b)
}

// Read reads one message and decodes it. On failure the zero value is
// returned together with the error.
func (t *Typed[T]) Read() (T, error) {
	b, err := t.tr.Read()
	if err != nil {
		var zero T
		return zero, err
	}
	return t.codec.Decode(b)
}

// IsOpen reports whether the underlying transport is usable.
func (t *Typed[T]) IsOpen() bool { return t.tr.IsOpen() }

// Close closes the underlying transport.
func (t *Typed[T]) Close() error { return t.tr.Close() }

// Transport returns the underlying transport.
func (t *Typed[T]) Transport() api.Transport { return t.tr }
