package algorithms

import (
	"github.com/katalvlaran/gravl/core"
	"github.com/katalvlaran/gravl/traverse"
)

// StronglyConnectedComponents partitions a directed graph into maximal
// sets of mutually reachable nodes, via Kosaraju's algorithm: a forward
// forest DFS records finish order, then transpose walks seeded in
// decreasing finish order each collect exactly one component. Components
// come out in the order their root was processed in the second pass.
func StronglyConnectedComponents[N, E any](g core.View[N, E], opts ...Option) ([][]core.NodeIndex, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)

	// 2. Pass 1: forward forest DFS, recording post-order.
	finish := make([]core.NodeIndex, 0, g.NodeCount())
	err := traverse.DFS(g, func(ev traverse.Event) traverse.Control {
		if ev.Kind == traverse.FinishNode {
			finish = append(finish, ev.Node)
		}

		return traverse.Continue
	}, nil, traverse.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	// 3. Pass 2: walk the transpose from each root in decreasing finish
	//    order; one shared visited set makes every walk stop at the
	//    boundary of earlier components.
	visited := make(map[core.NodeIndex]bool, g.NodeCount())
	components := make([][]core.NodeIndex, 0)
	for i := len(finish) - 1; i >= 0; i-- {
		root := finish[i]
		if visited[root] {
			continue
		}
		component, err := collectReachable(o.Ctx, g, root, core.Incoming, visited)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	return components, nil
}
