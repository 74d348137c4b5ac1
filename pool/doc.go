// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reusable receive buffers. Each transport Read borrows one fixed-size
// buffer for the duration of a single syscall and copies the message out
// before returning it.
package pool
