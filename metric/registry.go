package metric

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry bundles a private Prometheus registry with the translator metrics.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	Metrics            *Metrics
}

// NewRegistry creates a registry holding the translator metrics and the Go
// runtime collectors.
func NewRegistry(namespace string) (*Registry, error) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(namespace)
	if err := m.Register(reg); err != nil {
		return nil, err
	}
	reg.MustRegister(collectors.NewGoCollector())
	return &Registry{prometheusRegistry: reg, Metrics: m}, nil
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}
