//go:build !linux
// +build !linux

// File: transport/mqueue/mqueue_stub.go
// Author: momentics <momentics@gmail.com>

package mqueue

import "github.com/momentics/hioload-ipc/api"

func mqOpen(string, uint32, int, int) (int, error) { return -1, api.ErrNotSupported }
func mqUnlink(string) error                        { return api.ErrNotSupported }
func mqSend(int, []byte, uint) error               { return api.ErrNotSupported }
func mqReceive(int, []byte) (int, error)           { return 0, api.ErrNotSupported }
func mqStats(int) (Stats, error)                   { return Stats{}, api.ErrNotSupported }
func closeFd(int) error                            { return api.ErrNotSupported }
func wouldBlock(error) bool                        { return false }
