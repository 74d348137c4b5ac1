// File: pool/objpool.go
// Author: momentics <momentics@gmail.com>

package pool

import "sync"

// ObjectPool is a generic object pool.
type ObjectPool[T any] interface {
	Get() T
	Put(T)
}

var _ ObjectPool[*[]byte] = (*SyncPool[*[]byte])(nil)

// SyncPool is a typed sync.Pool.
type SyncPool[T any] struct {
	pool sync.Pool
}

// NewSyncPool creates a SyncPool that builds missing objects with newFn.
func NewSyncPool[T any](newFn func() T) *SyncPool[T] {
	sp := &SyncPool[T]{}
	sp.pool.New = func() any { return newFn() }
	return sp
}

func (sp *SyncPool[T]) Get() T  { return sp.pool.Get().(T) }
func (sp *SyncPool[T]) Put(v T) { sp.pool.Put(v) }
