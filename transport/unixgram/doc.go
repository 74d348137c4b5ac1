// Package unixgram
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-blocking UNIX domain datagram socket transport with a fixed
// well-known path. A server binds the path; a client stays unbound and uses
// the path only as the send destination. Before sending, Write probes the
// filesystem for the path and reports api.ErrPeerNotPresent when nothing
// is there yet. Each Write is one datagram, so message boundaries hold.
//
// Close on a server unlinks the path; clients never unlink.
package unixgram
