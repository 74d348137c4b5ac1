//go:build unix

package sysutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-ipc/internal/sysutil"
)

func TestExistsAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entry")
	assert.False(t, sysutil.Exists(path))
	require.NoError(t, sysutil.RemoveIfExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, sysutil.Exists(path))

	typ, err := sysutil.FileType(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(unix.S_IFREG), typ)

	require.NoError(t, sysutil.RemoveIfExists(path))
	assert.False(t, sysutil.Exists(path))
}

func TestErrnoClassification(t *testing.T) {
	assert.True(t, sysutil.WouldBlock(unix.EAGAIN))
	assert.True(t, sysutil.WouldBlock(unix.EWOULDBLOCK))
	assert.False(t, sysutil.WouldBlock(unix.EBADF))
	assert.False(t, sysutil.WouldBlock(unix.EINTR))
}
