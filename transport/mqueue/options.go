// File: transport/mqueue/options.go
// Author: momentics <momentics@gmail.com>

package mqueue

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-ipc/api"
)

const (
	// Kind labels this transport in metrics and logs.
	Kind = "mqueue"

	// MaxMessages is the default pending message bound (mq_maxmsg).
	MaxMessages = 10
	// MaxMessageSize is the default per-message bound (mq_msgsize),
	// terminator included.
	MaxMessageSize = 4096
	// DefaultMode is the permission set used when creating a queue.
	DefaultMode = 0o644
)

// Option customizes Open.
type Option func(*options)

type options struct {
	maxMessages    int
	maxMessageSize int
	mode           uint32
	priority       uint
	unlinkOnOpen   bool
	unlinkOnClose  bool
	logger         *zap.Logger
	observer       api.Observer
}

func defaultOptions() options {
	return options{
		maxMessages:    MaxMessages,
		maxMessageSize: MaxMessageSize,
		mode:           DefaultMode,
		unlinkOnOpen:   true,
	}
}

// WithCapacity overrides the queue depth and message size used on creation.
func WithCapacity(maxMessages, maxMessageSize int) Option {
	return func(o *options) {
		o.maxMessages = maxMessages
		o.maxMessageSize = maxMessageSize
	}
}

// WithMode sets the permission bits used on creation.
func WithMode(mode uint32) Option {
	return func(o *options) { o.mode = mode }
}

// WithPriority sets the priority attached to every written message.
func WithPriority(prio uint) Option {
	return func(o *options) { o.priority = prio }
}

// WithUnlinkOnOpen controls whether Open removes an existing queue first.
// With false, Open attaches to the queue if present.
func WithUnlinkOnOpen(unlink bool) Option {
	return func(o *options) { o.unlinkOnOpen = unlink }
}

// WithUnlinkOnClose controls whether Close removes the queue from the
// kernel namespace. Default false.
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
