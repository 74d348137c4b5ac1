// File: transport/shm/options.go
// Author: momentics <momentics@gmail.com>

package shm

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-ipc/api"
)

const (
	// Kind labels this transport in metrics and logs.
	Kind = "shm"

	// RegionSize is the default mapped size, terminator included.
	RegionSize = 4096
	// DefaultMode is the permission set used when creating the object.
	DefaultMode = 0o666
)

// Option customizes Open.
type Option func(*options)

type options struct {
	size          int
	mode          uint32
	unlinkOnClose bool
	logger        *zap.Logger
	observer      api.Observer
}

func defaultOptions() options {
	return options{
		size:          RegionSize,
		mode:          DefaultMode,
		unlinkOnClose: true,
	}
}

// WithSize overrides the region size.
func WithSize(n int) Option {
	return func(o *options) { o.size = n }
}

// WithMode sets the permission bits used when the object is created.
func WithMode(mode uint32) Option {
	return func(o *options) { o.mode = mode }
}

// WithUnlinkOnClose controls whether Close removes the object. Default true.
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
