package algorithms

import (
	"github.com/katalvlaran/gravl/core"
	"github.com/katalvlaran/gravl/traverse"
)

// IsAcyclic reports whether g contains no cycle. The mutation-maintained
// cache answers in O(1) when decisive; otherwise a forest DFS runs and
// any back edge witnesses a cycle. The computed result is not written
// back: the view may be shared by concurrent readers, and mutation-time
// invalidation already keeps the cache honest.
//
// Cycle semantics are directed: on an undirected graph the mirror
// registration of every edge is itself a back edge, so any undirected
// graph with at least one edge reports cyclic.
func IsAcyclic[N, E any](g core.View[N, E], opts ...Option) (bool, error) {
	// 1. Validate input.
	if g == nil {
		return false, ErrGraphNil
	}
	o := buildOptions(opts)

	// 2. Serve from the cache when it is decisive.
	if acyclic, known := g.KnownAcyclic(); known {
		return acyclic, nil
	}

	// 3. Forest DFS; abort at the first back edge.
	cyclic := false
	err := traverse.DFS(g, func(ev traverse.Event) traverse.Control {
		if ev.Kind == traverse.BackEdge {
			cyclic = true

			return traverse.Break
		}

		return traverse.Continue
	}, nil, traverse.WithContext(o.Ctx))
	if err != nil {
		return false, err
	}

	return !cyclic, nil
}
