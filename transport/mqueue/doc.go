// Package mqueue
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-blocking POSIX message queue transport.
//
// Open unlinks any queue of the same name before creating a fresh one, so
// every new handle purges prior content unless WithUnlinkOnOpen(false) is
// given. Close only closes the descriptor; the queue stays in the kernel
// namespace for late readers. Messages are sent with a trailing NUL at
// priority 0, which makes delivery strictly first-in first-out.
package mqueue
