// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Driver configuration loaded from environment variables.

package control

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/momentics/hioload-ipc/internal/logging"
)

// Config holds the settings shared by the example drivers.
type Config struct {
	IPC     IPCConfig
	Logging LogConfig
}

// IPCConfig names the IPC resources and the caller-side polling pace.
type IPCConfig struct {
	QueueName    string        `envconfig:"IPC_QUEUE_NAME" default:"/my_queue"`
	PipePath     string        `envconfig:"IPC_PIPE_PATH" default:"/tmp/my_pipe"`
	ShmName      string        `envconfig:"IPC_SHM_NAME" default:"/my_shared_memory"`
	SocketPath   string        `envconfig:"IPC_SOCKET_PATH" default:"non_blocking_socket"`
	PollInterval time.Duration `envconfig:"IPC_POLL_INTERVAL" default:"1s"`
	PollTimeout  time.Duration `envconfig:"IPC_POLL_TIMEOUT" default:"10s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.IPC.PollInterval <= 0 {
		return nil, fmt.Errorf("IPC_POLL_INTERVAL must be positive, got %s", cfg.IPC.PollInterval)
	}
	return &cfg, nil
}

// Default returns the configuration Load produces with an empty environment.
func Default() *Config {
	return &Config{
		IPC: IPCConfig{
			QueueName:    "/my_queue",
			PipePath:     "/tmp/my_pipe",
			ShmName:      "/my_shared_memory",
			SocketPath:   "non_blocking_socket",
			PollInterval: time.Second,
			PollTimeout:  10 * time.Second,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// LoggerConfig converts the logging section for internal/logging.
func (c *Config) LoggerConfig() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.Logging.Level
	lc.Development = c.Logging.Development
	return lc
}
