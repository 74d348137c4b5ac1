// Package shm
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared memory transport over a fixed-size POSIX shared memory object.
//
// Write zero-fills the whole region and copies the message plus a NUL
// terminator into it; Read returns everything before the first NUL. There is
// no atomicity, no versioning and no memory barrier: concurrent writers and
// readers of one region race freely and must synchronize externally. Reads
// do not consume anything, so the same value is returned until overwritten.
//
// Close unmaps the region, closes the descriptor and, by default, unlinks
// the object for every other handle too.
package shm
