package fake_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ipc/api"
	"github.com/momentics/hioload-ipc/fake"
)

func TestFakeBoundedQueue(t *testing.T) {
	tr := fake.NewTransport(2, 8)
	require.NoError(t, tr.Write([]byte("a")))
	require.NoError(t, tr.Write([]byte("b")))
	assert.ErrorIs(t, tr.Write([]byte("c")), api.ErrQueueFull)
	assert.ErrorIs(t, tr.Write([]byte("way too long")), api.ErrMessageTooLarge)
	assert.Equal(t, 2, tr.Pending())

	for _, want := range []string{"a", "b"} {
		got, err := tr.Read()
		require.NoError(t, err)
		assert.Equal(t, want, string(got))
	}
	_, err := tr.Read()
	assert.ErrorIs(t, err, api.ErrEmpty)

	w, r := tr.Calls()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, r)
}

func TestFakeCopiesInput(t *testing.T) {
	tr := fake.NewTransport(0, 0)
	msg := []byte("abc")
	require.NoError(t, tr.Write(msg))
	msg[0] = 'z'
	got, err := tr.Read()
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFakeInjectedErrors(t *testing.T) {
	tr := fake.NewTransport(0, 0)
	boom := errors.New("boom")

	tr.SetWriteError(boom)
	assert.ErrorIs(t, tr.Write(nil), boom)
	tr.SetWriteError(nil)

	tr.SetReadError(boom)
	_, err := tr.Read()
	assert.ErrorIs(t, err, boom)

	tr.SetCloseError(boom)
	assert.ErrorIs(t, tr.Close(), boom)
	assert.True(t, tr.IsOpen())

	tr.SetCloseError(nil)
	require.NoError(t, tr.Close())
	assert.False(t, tr.IsOpen())
	assert.ErrorIs(t, tr.Write(nil), api.ErrTransportClosed)
}
