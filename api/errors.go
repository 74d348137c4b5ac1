// Package api
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy shared by every IPC transport. Transient conditions (full,
// not ready, empty, peer absent) carry their own codes so callers can back
// off instead of treating them as hard failures.

package api

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeTooLarge
	ErrCodeQueueFull
	ErrCodeNotReady
	ErrCodeEmpty
	ErrCodePeerNotPresent
	ErrCodeShortWrite
	ErrCodeClosed
	ErrCodeNotSupported
	ErrCodeSetup
	ErrCodeDecode
	ErrCodeFailed
)

var codeNames = [...]string{
	ErrCodeOK:              "ok",
	ErrCodeInvalidArgument: "invalid argument",
	ErrCodeTooLarge:        "message too large",
	ErrCodeQueueFull:       "queue full",
	ErrCodeNotReady:        "not ready",
	ErrCodeEmpty:           "empty",
	ErrCodePeerNotPresent:  "peer not present",
	ErrCodeShortWrite:      "short write",
	ErrCodeClosed:          "transport closed",
	ErrCodeNotSupported:    "operation not supported",
	ErrCodeSetup:           "setup failed",
	ErrCodeDecode:          "decode failed",
	ErrCodeFailed:          "operation failed",
}

func (c ErrorCode) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Sentinels for errors.Is. Errors returned by transports carry more context
// but match the sentinel of their code.
var (
	ErrInvalidArgument = &Error{Code: ErrCodeInvalidArgument}
	ErrMessageTooLarge = &Error{Code: ErrCodeTooLarge}
	ErrQueueFull       = &Error{Code: ErrCodeQueueFull}
	ErrNotReady        = &Error{Code: ErrCodeNotReady}
	ErrEmpty           = &Error{Code: ErrCodeEmpty}
	ErrPeerNotPresent  = &Error{Code: ErrCodePeerNotPresent}
	ErrShortWrite      = &Error{Code: ErrCodeShortWrite}
	ErrTransportClosed = &Error{Code: ErrCodeClosed}
	ErrNotSupported    = &Error{Code: ErrCodeNotSupported}
	ErrSetup           = &Error{Code: ErrCodeSetup}
	ErrDecode          = &Error{Code: ErrCodeDecode}
	ErrOperationFailed = &Error{Code: ErrCodeFailed}
)

// Error represents a structured error with code and context.
type Error struct {
	Code     ErrorCode
	Op       string // "open", "write", "read", "close", ...
	Resource string // queue name, fifo path, shm name or socket path
	Err      error  // underlying cause, usually a unix.Errno
}

// NewError creates a new structured error.
func NewError(code ErrorCode, op, resource string, cause error) *Error {
	return &Error{Code: code, Op: op, Resource: resource, Err: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Code.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Resource != "" {
		msg += " (" + e.Resource + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// CodeOf extracts the ErrorCode of err. Nil maps to ErrCodeOK, foreign
// errors to ErrCodeFailed.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeFailed
}

// IsTransient reports whether err is a condition a caller may retry.
func IsTransient(err error) bool {
	switch CodeOf(err) {
	case ErrCodeQueueFull, ErrCodeNotReady, ErrCodeEmpty, ErrCodePeerNotPresent:
		return true
	}
	return false
}
