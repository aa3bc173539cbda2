package algorithms

import (
	"fmt"

	"github.com/katalvlaran/gravl/core"
	"github.com/katalvlaran/gravl/traverse"
)

// IsBipartite reports whether the undirected graph g admits a 2-coloring
// with no edge joining equal colors. Directed input is rejected with
// ErrDirectedGraph.
//
// The check is a BFS two-coloring per component: tree edges propagate the
// opposite color to the far endpoint, every other edge re-checks its two
// endpoints and a same-color pair short-circuits to false. Self-loops
// make a graph non-bipartite.
func IsBipartite[N, E any](g core.View[N, E], opts ...Option) (bool, error) {
	// 1. Validate input: two-coloring is an undirected-graph notion.
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return false, fmt.Errorf("%w: IsBipartite requires undirected input", ErrDirectedGraph)
	}
	o := buildOptions(opts)

	// 2. Forest BFS. Component roots default to the first color; tree
	//    edges color their target before the target's discovery event.
	colors := make(map[core.NodeIndex]bool, g.NodeCount())
	conflict := false
	err := traverse.BFS(g, func(ev traverse.Event) traverse.Control {
		switch ev.Kind {
		case traverse.DiscoverNode:
			if _, ok := colors[ev.Node]; !ok {
				colors[ev.Node] = false
			}
		case traverse.TreeEdge:
			colors[ev.Target] = !colors[ev.Source]
		case traverse.BackEdge, traverse.CrossEdge:
			if colors[ev.Source] == colors[ev.Target] {
				conflict = true

				return traverse.Break
			}
		}

		return traverse.Continue
	}, nil, traverse.WithContext(o.Ctx))
	if err != nil {
		return false, err
	}

	return !conflict, nil
}
