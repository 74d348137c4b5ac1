package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-ipc/internal/logging"
)

func TestNewLevels(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		l, err := logging.New(logging.Config{Level: lvl, Development: lvl == "debug"})
		require.NoError(t, err, lvl)
		var want zapcore.Level
		require.NoError(t, want.UnmarshalText([]byte(lvl)))
		assert.True(t, l.Core().Enabled(want))
		assert.False(t, l.Core().Enabled(want-1))
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "loud"})
	assert.Error(t, err)
}
