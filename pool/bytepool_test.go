package pool_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-ipc/pool"
)

func TestBytePoolSize(t *testing.T) {
	bp := pool.NewBytePool(128)
	b := bp.Get()
	if len(*b) != 128 {
		t.Fatalf("buffer length %d, want 128", len(*b))
	}
	*b = (*b)[:10]
	bp.Put(b)
	b2 := bp.Get()
	if len(*b2) != 128 {
		t.Errorf("reused buffer length %d, want 128", len(*b2))
	}
}

func TestBytePoolCopy(t *testing.T) {
	bp := pool.NewBytePool(16)
	out, err := bp.Copy(func(p []byte) (int, error) {
		return copy(p, "hello"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "hello" || cap(out) != 5 {
		t.Errorf("got %q cap %d", out, cap(out))
	}

	boom := errors.New("boom")
	if _, err := bp.Copy(func([]byte) (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("fill error not propagated: %v", err)
	}
}

func TestForSizeShared(t *testing.T) {
	if pool.ForSize(4096) != pool.ForSize(4096) {
		t.Error("ForSize should return the same pool for equal sizes")
	}
	if pool.ForSize(4096) == pool.ForSize(512) {
		t.Error("ForSize should separate sizes")
	}
}

func TestSyncPoolAsObjectPool(t *testing.T) {
	var op pool.ObjectPool[*int] = pool.NewSyncPool(func() *int { return new(int) })
	v := op.Get()
	if v == nil {
		t.Fatal("nil object from pool")
	}
	*v = 7
	op.Put(v)
}
