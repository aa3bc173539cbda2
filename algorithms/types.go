// Package algorithms defines the sentinel errors and options shared by
// the structural algorithms.
package algorithms

import (
	"context"
	"errors"
)

// Sentinel errors for algorithm preconditions and outcomes.
var (
	// ErrGraphNil is returned when a nil graph view is passed.
	ErrGraphNil = errors.New("algorithms: graph is nil")

	// ErrDirectedGraph is returned when an undirected-only algorithm
	// receives a directed graph.
	ErrDirectedGraph = errors.New("algorithms: graph is directed")

	// ErrCycleDetected is returned by TopologicalSort when the graph has
	// no topological order.
	ErrCycleDetected = errors.New("algorithms: cycle detected")
)

// Option configures algorithm execution via functional arguments.
type Option func(*Options)

// Options holds the parameters shared by all algorithms.
type Options struct {
	// Ctx allows cancellation and deadlines; it is handed down to the
	// underlying traversals.
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// buildOptions folds opts over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
