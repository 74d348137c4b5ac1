// Package sysutil
// Author: momentics <momentics@gmail.com>
//
// Small syscall helpers shared by the unix transports: errno classification
// and filesystem probes for named resources.
package sysutil
