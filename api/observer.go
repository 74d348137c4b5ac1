// File: api/observer.go
// Author: momentics <momentics@gmail.com>
//
// Hook for runtime metrics. Transports report every operation outcome.

package api

// Observer receives the outcome of transport operations.
type Observer interface {
	// ObserveOp is called once per Open, Write, Read and Close with the
	// error the caller received (nil on success).
	ObserveOp(kind, op string, err error)

	// HandleOpened and HandleClosed track live handles per kind.
	HandleOpened(kind string)
	HandleClosed(kind string)
}

// NopObserver discards everything.
type NopObserver struct{}

func (NopObserver) ObserveOp(string, string, error) {}
func (NopObserver) HandleOpened(string)             {}
func (NopObserver) HandleClosed(string)             {}
