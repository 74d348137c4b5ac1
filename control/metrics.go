// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collectors fed by transport operation outcomes.

package control

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/momentics/hioload-ipc/api"
)

// Metrics implements api.Observer on top of prometheus collectors.
type Metrics struct {
	Operations  *prometheus.CounterVec
	OpenHandles *prometheus.GaugeVec
}

var _ api.Observer = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipc_operations_total",
				Help: "Transport operations by kind, operation and outcome",
			},
			[]string{"transport", "op", "outcome"},
		),
		OpenHandles: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ipc_open_handles",
				Help: "Currently open transport handles",
			},
			[]string{"transport"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Operations, m.OpenHandles} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Outcome returns the label value recorded for err.
func Outcome(err error) string {
	return strings.ReplaceAll(api.CodeOf(err).String(), " ", "_")
}

func (m *Metrics) ObserveOp(kind, op string, err error) {
	m.Operations.WithLabelValues(kind, op, Outcome(err)).Inc()
}

func (m *Metrics) HandleOpened(kind string) { m.OpenHandles.WithLabelValues(kind).Inc() }
func (m *Metrics) HandleClosed(kind string) { m.OpenHandles.WithLabelValues(kind).Dec() }

// Snapshot returns the current operation counts keyed by
// "transport.op.outcome".
func (m *Metrics) Snapshot() map[string]float64 {
	ch := make(chan prometheus.Metric)
	go func() {
		m.Operations.Collect(ch)
		close(ch)
	}()
	out := make(map[string]float64)
	for metric := range ch {
		var pb dto.Metric
		if err := metric.Write(&pb); err != nil {
			continue
		}
		labels := make(map[string]string, 3)
		for _, lp := range pb.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		key := labels["transport"] + "." + labels["op"] + "." + labels["outcome"]
		out[key] = pb.GetCounter().GetValue()
	}
	return out
}
