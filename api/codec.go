// File: api/codec.go
// Author: momentics <momentics@gmail.com>

package api

// Codec converts values of T to and from the bytes a Transport carries.
// Decode failures must be reported, never replaced with a zero value.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(b []byte) (T, error)
}
