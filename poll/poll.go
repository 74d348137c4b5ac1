// Package poll
// Author: momentics <momentics@gmail.com>
//
// Caller-side fixed-interval retry for non-blocking transports. The
// transports themselves never retry; a driver that wants to wait for a peer
// or a message wraps the call in Until or Value.
package poll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/momentics/hioload-ipc/api"
)

// Until calls fn at most once per interval until it returns nil or an error
// that is not transient. The first call happens immediately. When ctx ends
// first, the returned error matches both the context error and the last
// transient error.
func Until(ctx context.Context, interval time.Duration, fn func() error) error {
	if interval <= 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "poll", "", fmt.Errorf("interval %s", interval))
	}
	lim := rate.NewLimiter(rate.Every(interval), 1)
	var last error
	for {
		if err := lim.Wait(ctx); err != nil {
			return expired(ctx, last)
		}
		last = fn()
		if last == nil || !api.IsTransient(last) {
			return last
		}
	}
}

// Value is Until for calls that produce a value, typically a Read.
func Value[T any](ctx context.Context, interval time.Duration, fn func() (T, error)) (T, error) {
	var v T
	err := Until(ctx, interval, func() error {
		var err error
		v, err = fn()
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Limiter.Wait also fails early when the next slot lies past the deadline.
func expired(ctx context.Context, last error) error {
	cause := ctx.Err()
	if cause == nil {
		cause = context.DeadlineExceeded
	}
	if last == nil {
		return cause
	}
	return errors.Join(cause, last)
}
