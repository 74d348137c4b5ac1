//go:build !unix

// File: transport/fifo/fifo_stub.go
// Author: momentics <momentics@gmail.com>

package fifo

import "github.com/momentics/hioload-ipc/api"

func ensureFifo(string, uint32) (bool, error) { return false, api.ErrNotSupported }
func openFifo(string) (int, error)            { return -1, api.ErrNotSupported }
func readFd(int, []byte) (int, error)         { return 0, api.ErrNotSupported }
func writeFd(int, []byte) (int, error)        { return 0, api.ErrNotSupported }
func closeFd(int) error                       { return api.ErrNotSupported }
func removePath(string) error                 { return api.ErrNotSupported }
func wouldBlock(error) bool                   { return false }
