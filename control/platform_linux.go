//go:build linux

// control/platform_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux system-wide POSIX message queue limits.

package control

import (
	"os"
	"strconv"
	"strings"
)

const mqueueProcDir = "/proc/sys/fs/mqueue/"

// RegisterPlatformProbes adds the kernel mqueue limits that bound
// mqueue.WithCapacity.
func RegisterPlatformProbes(dp *DebugProbes) {
	for _, name := range []string{"msg_max", "msgsize_max", "queues_max"} {
		dp.RegisterProbe("platform.mqueue."+name, func() any {
			return readProcInt(mqueueProcDir + name)
		})
	}
}

func readProcInt(path string) any {
	b, err := os.ReadFile(path)
	if err != nil {
		return err.Error()
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil {
		return err.Error()
	}
	return n
}
