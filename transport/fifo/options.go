// File: transport/fifo/options.go
// Author: momentics <momentics@gmail.com>

package fifo

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-ipc/api"
)

const (
	// Kind labels this transport in metrics and logs.
	Kind = "fifo"

	// MaxMessageSize bounds a single write; it equals the Linux PIPE_BUF.
	MaxMessageSize = 4096
	// DefaultMode is the permission set passed to mkfifo.
	DefaultMode = 0o666
)

// Option customizes Open.
type Option func(*options)

type options struct {
	maxMessageSize int
	mode           uint32
	unlinkOnClose  bool
	logger         *zap.Logger
	observer       api.Observer
}

func defaultOptions() options {
	return options{
		maxMessageSize: MaxMessageSize,
		mode:           DefaultMode,
		unlinkOnClose:  true,
	}
}

// WithMaxMessageSize lowers the write and read bound. Open rejects values
// above MaxMessageSize, past which a pipe write is no longer atomic.
func WithMaxMessageSize(n int) Option {
	return func(o *options) { o.maxMessageSize = n }
}

// WithMode sets the permission bits used when the FIFO is created.
func WithMode(mode uint32) Option {
	return func(o *options) { o.mode = mode }
}

// WithUnlinkOnClose controls whether Close removes the FIFO. Default true.
func WithUnlinkOnClose(unlink bool) Option {
	return func(o *options) { o.unlinkOnClose = unlink }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver sets the metrics observer.
func WithObserver(obs api.Observer) Option {
	return func(o *options) { o.observer = obs }
}
