//go:build linux

package mqueue_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ipc/api"
	"github.com/momentics/hioload-ipc/codec"
	"github.com/momentics/hioload-ipc/transport"
	"github.com/momentics/hioload-ipc/transport/mqueue"
)

func queueName() string {
	return "/hioload-test-" + uuid.NewString()[:8]
}

func openQueue(t *testing.T, name string, opts ...mqueue.Option) *mqueue.Queue {
	t.Helper()
	q, err := mqueue.Open(name, opts...)
	if err != nil {
		t.Skipf("message queues unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = q.Close()
		_ = mqueue.Unlink(name)
	})
	return q
}

func TestQueueWriteRead(t *testing.T) {
	q := openQueue(t, queueName())
	require.True(t, q.IsOpen())

	ints := transport.NewTyped[int](q, codec.Text[int]())
	require.NoError(t, ints.Write(42))
	got, err := ints.Read()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestQueueFreshReadIsEmpty(t *testing.T) {
	q := openQueue(t, queueName())
	_, err := q.Read()
	assert.ErrorIs(t, err, api.ErrEmpty)
	assert.True(t, api.IsTransient(err))
}

func TestQueueFIFOOrder(t *testing.T) {
	q := openQueue(t, queueName())
	for _, m := range []string{"first", "second", "third"} {
		require.NoError(t, q.Write([]byte(m)))
	}
	for _, want := range []string{"first", "second", "third"} {
		got, err := q.Read()
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
}

func TestQueueFullAfterMaxMessages(t *testing.T) {
	q := openQueue(t, queueName())
	for i := 0; i < mqueue.MaxMessages; i++ {
		require.NoError(t, q.Write([]byte("x")), "write %d", i)
	}
	err := q.Write([]byte("overflow"))
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrQueueFull)
	assert.NotErrorIs(t, err, api.ErrOperationFailed)

	st, err := q.Stats()
	require.NoError(t, err)
	assert.Equal(t, mqueue.MaxMessages, st.Pending)
}

func TestQueueRejectsOversize(t *testing.T) {
	q := openQueue(t, queueName())
	assert.Equal(t, mqueue.MaxMessageSize-1, q.Features().MaxMessageSize)

	err := q.Write([]byte(strings.Repeat("a", mqueue.MaxMessageSize)))
	assert.ErrorIs(t, err, api.ErrMessageTooLarge)
	require.NoError(t, q.Write([]byte(strings.Repeat("a", mqueue.MaxMessageSize-1))))

	st, err := q.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Pending)
}

func TestQueueOpenPurgesExisting(t *testing.T) {
	name := queueName()
	first := openQueue(t, name)
	require.NoError(t, first.Write([]byte("stale")))

	second := openQueue(t, name)
	_, err := second.Read()
	assert.ErrorIs(t, err, api.ErrEmpty)
}

func TestQueueAttach(t *testing.T) {
	name := queueName()
	pub := openQueue(t, name)
	sub := openQueue(t, name, mqueue.WithUnlinkOnOpen(false))

	require.NoError(t, pub.Write([]byte("42")))
	got, err := sub.Read()
	require.NoError(t, err)
	assert.Equal(t, "42", string(got))
}

func TestQueueCloseKeepsQueue(t *testing.T) {
	name := queueName()
	pub := openQueue(t, name)
	require.NoError(t, pub.Write([]byte("late")))
	require.NoError(t, pub.Close())
	require.NoError(t, pub.Close())
	assert.False(t, pub.IsOpen())
	assert.ErrorIs(t, pub.Write([]byte("x")), api.ErrTransportClosed)

	late := openQueue(t, name, mqueue.WithUnlinkOnOpen(false))
	got, err := late.Read()
	require.NoError(t, err)
	assert.Equal(t, "late", string(got))
}

func TestQueueUnlinkOnClose(t *testing.T) {
	name := queueName()
	q := openQueue(t, name, mqueue.WithUnlinkOnClose(true))
	require.NoError(t, q.Write([]byte("gone")))
	require.True(t, q.Features().UnlinkOnClose)
	require.NoError(t, q.Close())

	again := openQueue(t, name, mqueue.WithUnlinkOnOpen(false))
	_, err := again.Read()
	assert.ErrorIs(t, err, api.ErrEmpty)
}

func TestQueueInvalidNames(t *testing.T) {
	for _, name := range []string{"", "/", "/a/b", "/" + strings.Repeat("n", 300)} {
		_, err := mqueue.Open(name)
		assert.ErrorIs(t, err, api.ErrInvalidArgument, "name %q", name)
	}
}

func TestQueueDecodeError(t *testing.T) {
	q := openQueue(t, queueName())
	require.NoError(t, q.Write([]byte("not a number")))
	_, err := transport.NewTyped[int](q, codec.Text[int]()).Read()
	assert.ErrorIs(t, err, api.ErrDecode)
}
