// Package endpoint
// Author: momentics <momentics@gmail.com>
//
// Per-handle reporting shared by the transports: every operation outcome is
// forwarded to the api.Observer and non-nil outcomes are logged. Transient
// conditions log at debug level, everything else at warn.
package endpoint

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/momentics/hioload-ipc/api"
)

// Operation names reported to observers and logs.
const (
	OpOpen  = "open"
	OpWrite = "write"
	OpRead  = "read"
	OpClose = "close"
)

// Base carries the reporting state of one transport handle.
type Base struct {
	kind     string
	resource string
	log      *zap.Logger
	obs      api.Observer
}

// New builds a Base. Nil logger and observer are replaced by no-ops.
func New(kind, resource string, log *zap.Logger, obs api.Observer) Base {
	if log == nil {
		log = zap.NewNop()
	}
	if obs == nil {
		obs = api.NopObserver{}
	}
	return Base{
		kind:     kind,
		resource: resource,
		log:      log.With(zap.String("transport", kind), zap.String("resource", resource)),
		obs:      obs,
	}
}

// Kind returns the transport kind label.
func (b *Base) Kind() string { return b.kind }

// Resource returns the named resource this handle refers to.
func (b *Base) Resource() string { return b.resource }

// Logger returns the handle-scoped logger.
func (b *Base) Logger() *zap.Logger { return b.log }

// Fail builds a structured error for op on this handle.
func (b *Base) Fail(code api.ErrorCode, op string, cause error) *api.Error {
	return api.NewError(code, op, b.resource, cause)
}

// Done reports the outcome of op and returns err unchanged. A typed nil
// *api.Error is normalised to a nil interface.
func (b *Base) Done(op string, err *api.Error) error {
	if err == nil {
		b.obs.ObserveOp(b.kind, op, nil)
		return nil
	}
	b.obs.ObserveOp(b.kind, op, err)
	lvl := zapcore.WarnLevel
	if api.IsTransient(err) {
		lvl = zapcore.DebugLevel
	}
	if ce := b.log.Check(lvl, err.Code.String()); ce != nil {
		ce.Write(zap.String("op", op), zap.NamedError("cause", err.Err))
	}
	return err
}

// Opened records a successful open.
func (b *Base) Opened() {
	b.obs.HandleOpened(b.kind)
	b.obs.ObserveOp(b.kind, OpOpen, nil)
	b.log.Debug("opened")
}

// Closed records a released handle.
func (b *Base) Closed() {
	b.obs.HandleClosed(b.kind)
}
