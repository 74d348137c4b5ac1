// Package api
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contracts shared by the hioload-ipc transports: the byte-level Transport,
// the value Codec, the Observer metrics hook and the structured error
// taxonomy. This package has no platform dependencies.
package api
