//go:build !linux
// +build !linux

// File: transport/shm/shm_stub.go
// Author: momentics <momentics@gmail.com>

package shm

import "github.com/momentics/hioload-ipc/api"

func mapRegion(string, int, uint32) (int, []byte, error) { return -1, nil, api.ErrNotSupported }
func unlinkObject(string) error                          { return api.ErrNotSupported }
func unmap([]byte) error                                 { return api.ErrNotSupported }
func closeFd(int) error                                  { return api.ErrNotSupported }
