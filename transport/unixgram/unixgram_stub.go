//go:build !unix

// File: transport/unixgram/unixgram_stub.go
// Author: momentics <momentics@gmail.com>

package unixgram

import "github.com/momentics/hioload-ipc/api"

func openSocket(string, bool) (int, error) { return -1, api.ErrNotSupported }
func sendTo(int, []byte, string) error     { return api.ErrNotSupported }
func recv(int, []byte) (int, error)        { return 0, api.ErrNotSupported }
func pathExists(string) bool               { return false }
func closeFd(int) error                    { return api.ErrNotSupported }
func removePath(string) error              { return api.ErrNotSupported }
func wouldBlock(error) bool                { return false }
func refused(error) bool                   { return false }
