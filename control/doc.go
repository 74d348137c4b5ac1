// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration and debug introspection for processes that
// drive IPC transports.
//
// Provides:
//   - Metrics: a prometheus-backed api.Observer counting operation outcomes
//     and tracking open handles per transport kind
//   - Config: driver settings loaded from the environment
//   - DebugProbes: named probes dumped on demand
package control
