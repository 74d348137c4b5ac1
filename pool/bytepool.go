// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

import "sync"

// BytePool hands out buffers of one fixed size.
type BytePool struct {
	size int
	sp   *SyncPool[*[]byte]
}

// NewBytePool returns a pool of size-byte buffers.
func NewBytePool(size int) *BytePool {
	return &BytePool{
		size: size,
		sp: NewSyncPool(func() *[]byte {
			b := make([]byte, size)
			return &b
		}),
	}
}

// Size returns the buffer length served by the pool.
func (b *BytePool) Size() int { return b.size }

// Get returns a buffer of exactly Size bytes. Contents are unspecified.
func (b *BytePool) Get() *[]byte {
	buf := b.sp.Get()
	*buf = (*buf)[:b.size]
	return buf
}

// Put returns a buffer obtained from Get.
func (b *BytePool) Put(buf *[]byte) {
	if buf == nil || cap(*buf) < b.size {
		return
	}
	b.sp.Put(buf)
}

// Copy borrows a buffer, lets fill populate it and returns a private copy
// of the first n bytes fill reported.
func (b *BytePool) Copy(fill func(p []byte) (int, error)) ([]byte, error) {
	buf := b.Get()
	defer b.Put(buf)
	n, err := fill(*buf)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, (*buf)[:n])
	return out, nil
}

var (
	sharedMu    sync.Mutex
	sharedPools = make(map[int]*BytePool)
)

// ForSize returns a process-wide pool for size-byte buffers.
func ForSize(size int) *BytePool {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if p, ok := sharedPools[size]; ok {
		return p
	}
	p := NewBytePool(size)
	sharedPools[size] = p
	return p
}
