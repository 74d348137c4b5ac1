package control_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ipc/control"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := control.Load()
	require.NoError(t, err)
	assert.Equal(t, control.Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("IPC_QUEUE_NAME", "/other_queue")
	t.Setenv("IPC_SOCKET_PATH", "/tmp/sock")
	t.Setenv("IPC_POLL_INTERVAL", "250ms")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")

	cfg, err := control.Load()
	require.NoError(t, err)
	assert.Equal(t, "/other_queue", cfg.IPC.QueueName)
	assert.Equal(t, "/tmp/sock", cfg.IPC.SocketPath)
	assert.Equal(t, 250*time.Millisecond, cfg.IPC.PollInterval)
	assert.Equal(t, "/tmp/my_pipe", cfg.IPC.PipePath)

	lc := cfg.LoggerConfig()
	assert.Equal(t, "debug", lc.Level)
	assert.True(t, lc.Development)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("IPC_POLL_INTERVAL", "soon")
	_, err := control.Load()
	assert.Error(t, err)

	t.Setenv("IPC_POLL_INTERVAL", "0s")
	_, err = control.Load()
	assert.Error(t, err)
}
