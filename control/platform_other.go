//go:build !linux

// control/platform_other.go
// Author: momentics <momentics@gmail.com>

package control

// RegisterPlatformProbes is a no-op outside Linux.
func RegisterPlatformProbes(*DebugProbes) {}
