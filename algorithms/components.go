package algorithms

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

// ConnectedComponents partitions the undirected graph g into reachability
// classes. Components are ordered by the insertion order of their first
// node; membership order inside a component follows the walk. Directed
// input is rejected with ErrDirectedGraph.
func ConnectedComponents[N, E any](g core.View[N, E], opts ...Option) ([][]core.NodeIndex, error) {
	// 1. Validate input.
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, fmt.Errorf("%w: ConnectedComponents requires undirected input", ErrDirectedGraph)
	}
	o := buildOptions(opts)

	// 2. One stack walk per yet-unvisited node, scanning insertion order.
	visited := make(map[core.NodeIndex]bool, g.NodeCount())
	components := make([][]core.NodeIndex, 0)
	for _, idx := range g.NodeIndices() {
		if visited[idx] {
			continue
		}
		component, err := collectReachable(o.Ctx, g, idx, core.Outgoing, visited)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}

	return components, nil
}

// collectReachable gathers every node reachable from seed along the given
// adjacency side into one slice, marking them in visited. Iterative
// depth-first walk over an explicit stack; shared with Kosaraju's second
// pass, which walks the transpose.
func collectReachable[N, E any](ctx context.Context, g core.View[N, E], seed core.NodeIndex, dir core.Direction, visited map[core.NodeIndex]bool) ([]core.NodeIndex, error) {
	visited[seed] = true
	stack := []core.NodeIndex{seed}
	collected := make([]core.NodeIndex, 0)

	for len(stack) > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		collected = append(collected, node)

		for _, nb := range g.NeighborsDirected(node, dir) {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			stack = append(stack, nb)
		}
	}

	return collected, nil
}
