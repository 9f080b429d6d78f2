package observe

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/fleet/internal/collection"
)

// Metric names.
const (
	operationsTotalName   = "fleet_operations_total"
	operationDurationName = "fleet_operation_duration_seconds"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics counts collection operations by outcome and records their
// durations.
type Metrics struct {
	gatherer   prometheus.Gatherer
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewMetrics registers the collection metrics on a fresh registry.
func NewMetrics() (*Metrics, error) {
	return NewMetricsWith(prometheus.NewRegistry())
}

// NewMetricsWith registers the collection metrics on reg. The registry is
// also used to gather Summary.
func NewMetricsWith(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		gatherer: reg,
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: operationsTotalName,
				Help: "Total number of collection operations",
			},
			[]string{"op", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    operationDurationName,
				Help:    "Time taken by collection operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"op"},
		),
	}
	for _, c := range []prometheus.Collector{m.operations, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// Observe implements collection.Observer.
func (m *Metrics) Observe(e collection.Event) {
	outcome := OutcomeOK
	if e.Err != nil {
		outcome = OutcomeError
	}
	m.operations.WithLabelValues(e.Op, outcome).Inc()
	m.duration.WithLabelValues(e.Op).Observe(e.Duration.Seconds())
}

// Summary returns the operation counters keyed by "op/outcome".
func (m *Metrics) Summary() (map[string]float64, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	summary := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != operationsTotalName {
			continue
		}
		for _, metric := range mf.GetMetric() {
			var op, outcome string
			for _, lp := range metric.GetLabel() {
				switch lp.GetName() {
				case "op":
					op = lp.GetValue()
				case "outcome":
					outcome = lp.GetValue()
				}
			}
			summary[op+"/"+outcome] = metric.GetCounter().GetValue()
		}
	}
	return summary, nil
}
