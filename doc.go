// Package gravl is an in-memory graph toolkit: a generic container with
// typed node and edge payloads, an immutable/mutable dual-view mutation
// protocol, an event-driven traversal engine, and structural algorithms
// on top of it.
//
// The library is organized as one package per concern:
//
//	core/       — Graph and MutableGraph views over one backing store:
//	              stable integer indices, adjacency in both directions,
//	              copy-on-begin mutation, structural Equal and Hash
//	traverse/   — depth-first and breadth-first walks with visitor
//	              control flow (Continue, Break, Prune) and
//	              tree/back/cross edge classification
//	algorithms/ — IsAcyclic, IsBipartite, ConnectedComponents,
//	              TopologicalSort, StronglyConnectedComponents
//	build/      — deterministic topology constructors: path, cycle,
//	              star, complete, complete bipartite, grid, seeded
//	              random
//	dot/        — GraphViz DOT export
//
// A graph is built under a mutable view and then sealed; the sealed
// value is safe for any number of concurrent readers and is never
// changed by later mutation cycles:
//
//	g := core.NewDirected(func(m *core.MutableGraph[string, int]) {
//		a := m.AddNode("a")
//		b := m.AddNode("b")
//		m.AddEdge(a, b, 1)
//	})
//	order, err := algorithms.TopologicalSort[string, int](g)
//
// Everything above core consumes the shared read-only core.View
// interface, so traversals, algorithms and the exporter accept either
// view interchangeably.
package gravl
