// Package fifo
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Non-blocking named pipe transport. Open attaches to the FIFO at the given
// path or creates it first, and always opens it read-write so neither side
// blocks waiting for a peer. A message is whatever one write(2) hands to the
// kernel, bounded by PIPE_BUF so it is written atomically; there is no
// framing, and a Read may return several queued writes at once.
//
// Close unlinks the path by default, also when this handle only attached to
// an existing FIFO. Every other handle on the same path loses it.
package fifo
