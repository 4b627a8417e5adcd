package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace is used when no namespace is configured.
const DefaultNamespace = "semowl"

// Metrics contains the translator metrics.
type Metrics struct {
	AxiomsWritten   *prometheus.CounterVec
	AxiomsRead      *prometheus.CounterVec
	ReadErrors      *prometheus.CounterVec
	TriplesWritten  prometheus.Counter
	TriplesRemoved  prometheus.Counter
	ReadAllDuration prometheus.Histogram
}

// NewMetrics creates the translator metrics under namespace.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Metrics{
		AxiomsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "axioms",
				Name:      "written_total",
				Help:      "Total number of axioms written to a graph",
			},
			[]string{"axiom_type", "status"},
		),

		AxiomsRead: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "axioms",
				Name:      "read_total",
				Help:      "Total number of axioms read from a graph",
			},
			[]string{"axiom_type"},
		),

		ReadErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "axioms",
				Name:      "read_errors_total",
				Help:      "Total number of statements that failed to translate",
			},
			[]string{"axiom_type", "action"},
		),

		TriplesWritten: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "triples",
				Name:      "written_total",
				Help:      "Total number of triples added by axiom writes",
			},
		),

		TriplesRemoved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "triples",
				Name:      "removed_total",
				Help:      "Total number of triples retracted by axiom removal",
			},
		),

		ReadAllDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "graph",
				Name:      "read_all_duration_seconds",
				Help:      "Time to read every axiom of a graph",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// Collectors returns every collector for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.AxiomsWritten,
		m.AxiomsRead,
		m.ReadErrors,
		m.TriplesWritten,
		m.TriplesRemoved,
		m.ReadAllDuration,
	}
}

// Register registers every collector with reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordWrite counts a written axiom and the triples it added.
func (m *Metrics) RecordWrite(axiomType string, triples int, err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.AxiomsWritten.WithLabelValues(axiomType, status).Inc()
	m.TriplesWritten.Add(float64(triples))
}

// RecordRead counts an axiom read from a graph.
func (m *Metrics) RecordRead(axiomType string) {
	if m == nil {
		return
	}
	m.AxiomsRead.WithLabelValues(axiomType).Inc()
}

// RecordReadError counts a statement that failed to translate. action is
// "skipped" in ignore-read-errors mode and "failed" otherwise.
func (m *Metrics) RecordReadError(axiomType, action string) {
	if m == nil {
		return
	}
	m.ReadErrors.WithLabelValues(axiomType, action).Inc()
}

// RecordRemove counts retracted triples.
func (m *Metrics) RecordRemove(triples int) {
	if m == nil {
		return
	}
	m.TriplesRemoved.Add(float64(triples))
}

// RecordReadAll records the duration of a full graph read.
func (m *Metrics) RecordReadAll(d time.Duration) {
	if m == nil {
		return
	}
	m.ReadAllDuration.Observe(d.Seconds())
}
