// Package algorithms provides structural graph algorithms over a
// core.View: cycle detection, bipartiteness, connected components,
// topological ordering and strongly connected components. All of them are
// read-only and accept either graph facade.
//
// What
//
//   - IsAcyclic: reports cycle-freeness, serving the mutation-maintained
//     cache when it is decisive and running a forest DFS otherwise.
//   - IsBipartite: BFS two-coloring of an undirected graph.
//   - ConnectedComponents: reachability classes of an undirected graph.
//   - TopologicalSort: dependency order of a directed acyclic graph.
//   - StronglyConnectedComponents: Kosaraju's two-pass algorithm.
//
// Preconditions
//
// IsBipartite and ConnectedComponents are defined for undirected graphs
// and return ErrDirectedGraph otherwise. TopologicalSort returns
// ErrCycleDetected for input without a topological order; a cyclic graph
// is an expected outcome there, not a programming error. IsAcyclic treats
// the mirror of an undirected edge as a back edge, so any undirected
// graph with at least one edge reports cyclic; cycle semantics are a
// directed-graph notion.
//
// Usage
//
//	order, err := algorithms.TopologicalSort(g)
//	switch {
//	case errors.Is(err, algorithms.ErrCycleDetected):
//		// handle the cycle
//	case err != nil:
//		// propagate
//	}
//
// Options
//
//   - WithContext(ctx): cancellation and deadlines, handed down to the
//     underlying traversals.
//
// Complexity: every function is O(V+E) time and O(V) auxiliary space;
// IsAcyclic is O(1) when the cache answers.
package algorithms
