// Package metric provides Prometheus metrics for the axiom translator.
//
// Metrics are created unregistered; call Register with the registry of the
// hosting process, or use NewRegistry for a private one.
package metric
