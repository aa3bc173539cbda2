package algorithms

import (
	"github.com/katalvlaran/gravl/core"
	"github.com/katalvlaran/gravl/traverse"
)

// TopologicalSort returns an order of g's nodes in which every edge's
// source precedes its target. Input without a topological order yields
// ErrCycleDetected; that is an expected outcome for cyclic graphs, not a
// programming error. Several valid orders may exist, the edge property is
// the only guarantee.
func TopologicalSort[N, E any](g core.View[N, E], opts ...Option) ([]core.NodeIndex, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)

	// 2. Cyclic graphs have no topological order.
	acyclic, err := IsAcyclic(g, opts...)
	if err != nil {
		return nil, err
	}
	if !acyclic {
		return nil, ErrCycleDetected
	}

	// 3. Forest DFS collecting post-order.
	finish := make([]core.NodeIndex, 0, g.NodeCount())
	err = traverse.DFS(g, func(ev traverse.Event) traverse.Control {
		if ev.Kind == traverse.FinishNode {
			finish = append(finish, ev.Node)
		}

		return traverse.Continue
	}, nil, traverse.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	// 4. Reverse the finish order: dependencies come out first.
	for i, j := 0, len(finish)-1; i < j; i, j = i+1, j-1 {
		finish[i], finish[j] = finish[j], finish[i]
	}

	return finish, nil
}
