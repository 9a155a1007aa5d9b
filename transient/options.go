// SPDX-License-Identifier: MIT

package transient

const (
	// DefaultWorkers evaluates samples sequentially.
	DefaultWorkers = 1

	panicWorkersInvalid  = "transient: WithWorkers: n must be >= 1"
	panicObserverInvalid = "transient: WithObserver: fn must not be nil"
)

// Sample is one point of a trajectory: the time t_k and p(t_k).
type Sample struct {
	K int       `json:"k"`
	T float64   `json:"t"`
	P []float64 `json:"p"`
}

// Observer is called once per computed sample. With more than one worker it is
// called concurrently and in no particular order.
type Observer func(s Sample)

// Option configures Solve.
type Option func(*options)

type options struct {
	workers  int
	observer Observer
}

// WithWorkers bounds the number of sample points evaluated concurrently.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithObserver registers fn to be called after every sample is computed.
// Panics when fn is nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic(panicObserverInvalid)
	}

	return func(o *options) { o.observer = fn }
}

func gatherOptions(user ...Option) options {
	o := options{workers: DefaultWorkers}
	for _, set := range user {
		set(&o)
	}

	return o
}
