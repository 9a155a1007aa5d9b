// SPDX-License-Identifier: MIT

// Package metrics owns the Prometheus collectors of the analysis pipeline.
// Every method is a no-op on a nil *Metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels of ctmc_analyses_total.
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
	OutcomeCanceled = "canceled"
)

// Metrics groups the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	solverDuration     *prometheus.HistogramVec
	analyses           *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	transientSamples   prometheus.Counter
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		solverDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ctmc_solver_duration_seconds",
				Help:    "Duration of solver runs",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"solver"},
		),
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ctmc_analyses_total",
				Help: "Total number of analyses by outcome",
			},
			[]string{"outcome"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ctmc_validation_failures_total",
				Help: "Total number of rejected models by violation kind",
			},
			[]string{"kind"},
		),
		transientSamples: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ctmc_transient_samples_total",
				Help: "Total number of transient sample points computed",
			},
		),
	}
	m.registry.MustRegister(m.solverDuration, m.analyses, m.validationFailures, m.transientSamples)

	return m
}

// Registry exposes the underlying registry, e.g. for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveSolver records the duration of one solver run.
func (m *Metrics) ObserveSolver(solver string, d time.Duration) {
	if m == nil {
		return
	}
	m.solverDuration.WithLabelValues(solver).Observe(d.Seconds())
}

// CountAnalysis increments the analyses counter for outcome.
func (m *Metrics) CountAnalysis(outcome string) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(outcome).Inc()
}

// CountValidationFailure increments the rejection counter for kind.
func (m *Metrics) CountValidationFailure(kind string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(kind).Inc()
}

// CountSample increments the transient sample counter.
func (m *Metrics) CountSample() {
	if m == nil {
		return
	}
	m.transientSamples.Inc()
}
