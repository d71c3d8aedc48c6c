package session

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/bstviz/bst"
)

// Outcome labels for the operations counter.
const (
	outcomeOK      = "ok"
	outcomeMiss    = "miss"
	outcomeInvalid = "invalid"
)

// Metrics exposes session activity as Prometheus collectors. A nil *Metrics
// records nothing.
type Metrics struct {
	Operations *prometheus.CounterVec
	Nodes      prometheus.Gauge
	Height     prometheus.Gauge
}

// NewMetrics creates the session collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bstviz",
			Name:      "operations_total",
			Help:      "Session operations by kind and outcome.",
		}, []string{"op", "outcome"}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bstviz",
			Name:      "tree_nodes",
			Help:      "Number of keys in the current tree.",
		}),
		Height: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bstviz",
			Name:      "tree_height",
			Help:      "Height of the current tree.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Operations, m.Nodes, m.Height)
	}

	return m
}

// observe counts one operation and refreshes the tree gauges.
func (m *Metrics) observe(op Op, outcome string, t bst.Tree) {
	if m == nil {
		return
	}
	m.Operations.WithLabelValues(op.String(), outcome).Inc()
	m.Nodes.Set(float64(t.Count()))
	m.Height.Set(float64(t.Height()))
}
