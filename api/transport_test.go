package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/momentics/hioload-ipc/api"
)

func TestTransportInterfaceCompliance(t *testing.T) {
	var _ api.Transport = (*mockTransport)(nil)
	var _ api.Observer = api.NopObserver{}
}

type mockTransport struct{}

func (*mockTransport) Write([]byte) error              { return nil }
func (*mockTransport) Read() ([]byte, error)           { return nil, api.ErrEmpty }
func (*mockTransport) IsOpen() bool                    { return true }
func (*mockTransport) Close() error                    { return nil }
func (*mockTransport) Features() api.TransportFeatures { return api.TransportFeatures{} }

func TestErrorMatchesSentinelByCode(t *testing.T) {
	cause := errors.New("resource temporarily unavailable")
	err := fmt.Errorf("publish: %w", api.NewError(api.ErrCodeQueueFull, "write", "/q", cause))

	if !errors.Is(err, api.ErrQueueFull) {
		t.Fatal("expected match on ErrQueueFull")
	}
	if errors.Is(err, api.ErrEmpty) {
		t.Fatal("unexpected match on ErrEmpty")
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	var e *api.Error
	if !errors.As(err, &e) || e.Resource != "/q" || e.Op != "write" {
		t.Fatalf("unexpected error fields: %+v", e)
	}
}

func TestErrorString(t *testing.T) {
	err := api.NewError(api.ErrCodePeerNotPresent, "write", "sock", nil)
	if got, want := err.Error(), "write: peer not present (sock)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := api.ErrorCode(99).String(); got != "code(99)" {
		t.Fatalf("unexpected code string %q", got)
	}
}

func TestCodeOfAndTransient(t *testing.T) {
	cases := []struct {
		err       error
		code      api.ErrorCode
		transient bool
	}{
		{nil, api.ErrCodeOK, false},
		{api.ErrQueueFull, api.ErrCodeQueueFull, true},
		{api.ErrNotReady, api.ErrCodeNotReady, true},
		{api.ErrEmpty, api.ErrCodeEmpty, true},
		{api.ErrPeerNotPresent, api.ErrCodePeerNotPresent, true},
		{api.ErrMessageTooLarge, api.ErrCodeTooLarge, false},
		{api.ErrDecode, api.ErrCodeDecode, false},
		{errors.New("other"), api.ErrCodeFailed, false},
	}
	for _, c := range cases {
		if got := api.CodeOf(c.err); got != c.code {
			t.Errorf("CodeOf(%v) = %v, want %v", c.err, got, c.code)
		}
		if got := api.IsTransient(c.err); got != c.transient {
			t.Errorf("IsTransient(%v) = %v, want %v", c.err, got, c.transient)
		}
	}
}
