// File: transport/unixgram/options.go
// Author: momentics <momentics@gmail.com>

package unixgram

import (
	"go.uber.org/zap"

	"github.com/momentics/hioload-ipc/api"
)

const (
	// Kind labels this transport in metrics and logs.
	Kind = "unixgram"

	// DefaultPath is the well-known socket path, relative to the working
	// directory.
	DefaultPath = "non_blocking_socket"
	// MaxMessageSize bounds a datagram and the receive buffer.
	MaxMessageSize = 4096
)

// Role selects whether a handle binds the well-known path.
type Role int

const (
	RoleClient Role = iota
	RoleServer
)

func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}

// Option customizes Open.
type Option func(*options)

type options struct {
	path           string
	maxMessageSize int
	unlinkOnClose  *bool
	logger         *zap.Logger
	observer       api.Observer
}

func defaultOptions() options {
	return options{
		path:           DefaultPath,
		maxMessageSize: MaxMessageSize,
	}
}

// WithPath overrides the well-known socket path.
func WithPath(path string) Option {
	return func(o *options) { o.path = path }
}

// WithMaxMessageSize overrides the datagram bound.
func WithMaxMessageSize(n int) Option {
	return func(o *options) { o.maxMessageSize = n }
}

// WithUnlinkOnClose controls whether Close removes the socket path. The
// default is true for servers and false for clients.
func WithUnlinkOnClose(unlink bool) Option {
	return func(o *options) { o.unlinkOnClose = &unlink }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithObserver sets the metrics observer.
func WithObserver(obs api.Observer) Option {
	return func(o *options) { o.observer = obs }
}
