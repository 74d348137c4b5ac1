package transport_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ipc/api"
	"github.com/momentics/hioload-ipc/codec"
	"github.com/momentics/hioload-ipc/fake"
	"github.com/momentics/hioload-ipc/transport"
)

func TestTypedRoundTrip(t *testing.T) {
	tr := fake.NewTransport(10, 4096)
	ints := transport.NewTyped[int](tr, codec.Text[int]())
	require.NoError(t, ints.Write(42))
	got, err := ints.Read()
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	strs := transport.NewTyped[string](tr, codec.Text[string]())
	require.NoError(t, strs.Write("Hello, Shared Memory!"))
	s, err := strs.Read()
	require.NoError(t, err)
	assert.Equal(t, "Hello, Shared Memory!", s)
	assert.Same(t, api.Transport(tr), strs.Transport())
}

func TestTypedPropagatesErrors(t *testing.T) {
	tr := fake.NewTransport(1, 4096)
	ints := transport.NewTyped[int](tr, codec.Text[int]())

	v, err := ints.Read()
	assert.ErrorIs(t, err, api.ErrEmpty)
	assert.Zero(t, v)

	require.NoError(t, tr.Write([]byte("forty-two")))
	_, err = ints.Read()
	assert.ErrorIs(t, err, api.ErrDecode)

	require.NoError(t, ints.Write(1))
	assert.ErrorIs(t, ints.Write(2), api.ErrQueueFull)

	require.NoError(t, ints.Close())
	assert.False(t, ints.IsOpen())
}

func TestConn(t *testing.T) {
	tr := fake.NewTransport(0, 0)
	c := transport.NewConn(tr)

	n, err := c.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	buf := make([]byte, 16)
	n, err = c.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf[:n]))

	_, err = c.Read(buf)
	assert.ErrorIs(t, err, api.ErrEmpty)

	_, _ = c.Write([]byte("truncated"))
	n, err = c.Read(buf[:4])
	assert.ErrorIs(t, err, io.ErrShortBuffer)
	assert.Equal(t, 4, n)

	require.NoError(t, c.Close())
	_, err = c.Write([]byte("x"))
	assert.ErrorIs(t, err, api.ErrTransportClosed)
}
