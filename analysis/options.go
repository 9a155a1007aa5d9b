// SPDX-License-Identifier: MIT

package analysis

import (
	"github.com/katalvlaran/ctmc/internal/metrics"
	"github.com/katalvlaran/ctmc/stationary"
)

const panicWorkersInvalid = "analysis: WithWorkers: n must be >= 1"

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers sets the transient solver's worker count. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(a *Analyzer) { a.workers = n }
}

// WithMetrics records solver durations, outcomes and rejections on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Analyzer) { a.metrics = m }
}

// WithStationaryOptions forwards options to stationary.Solve.
func WithStationaryOptions(opts ...stationary.Option) Option {
	return func(a *Analyzer) { a.stationaryOpts = append(a.stationaryOpts, opts...) }
}
