// Package metric provides Prometheus metrics for omap tooling.
package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all benchmark metrics behind a private Prometheus
// registry, so repeated runs in one process never collide on
// registration.
type Registry struct {
	reg *prometheus.Registry

	// OpsTotal counts container operations by kind (set, get, delete).
	OpsTotal *prometheus.CounterVec

	// MapLength tracks the current number of keys in the container.
	MapLength prometheus.Gauge

	// IterationSeconds samples full-traversal durations by direction
	// (forward, backward).
	IterationSeconds *prometheus.HistogramVec
}

// NewRegistry creates a registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
	}

	r.OpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "omap",
		Subsystem: "bench",
		Name:      "ops_total",
		Help:      "Total container operations by kind",
	}, []string{"op"})

	r.MapLength = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "omap",
		Subsystem: "bench",
		Name:      "map_length",
		Help:      "Current number of keys in the container",
	})

	r.IterationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "omap",
		Subsystem: "bench",
		Name:      "iteration_duration_seconds",
		Help:      "Full-traversal duration by direction",
		Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
	}, []string{"direction"})

	r.reg.MustRegister(
		r.OpsTotal,
		r.MapLength,
		r.IterationSeconds,
	)

	return r
}

// Snapshot returns the current counter and gauge values keyed by
// "name{label}" for end-of-run reporting.
func (r *Registry) Snapshot() (map[string]float64, error) {
	families, err := r.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			name := fam.GetName()
			for _, lp := range m.GetLabel() {
				name += "{" + lp.GetValue() + "}"
			}
			switch {
			case m.GetCounter() != nil:
				out[name] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[name] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				out[name] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}
