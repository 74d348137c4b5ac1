// File: api/transport.go
// Author: momentics <momentics@gmail.com>
//
// Uniform non-blocking transport contract implemented by every IPC backend.

package api

// Transport moves single bounded messages through a named OS resource.
// Every method returns immediately; none of them loops or sleeps.
type Transport interface {
	// Write hands one encoded message to the resource.
	Write(msg []byte) error

	// Read takes one message out of the resource. The returned slice is
	// owned by the caller.
	Read() ([]byte, error)

	// IsOpen reports whether the underlying handle is usable.
	IsOpen() bool

	// Close releases the handle and, depending on configuration, unlinks
	// the named resource for every other handle too.
	Close() error

	// Features reports static transport properties.
	Features() TransportFeatures
}

// TransportFeatures describes transport capabilities and limits.
type TransportFeatures struct {
	Kind           string // "mqueue", "fifo", "shm", "unixgram"
	MaxMessageSize int    // largest encoded message accepted by Write
	Capacity       int    // pending message bound, 0 when not applicable
	Destructive    bool   // Read consumes the message
	Boundaries     bool   // kernel preserves message boundaries
	UnlinkOnClose  bool   // Close removes the named resource
}
