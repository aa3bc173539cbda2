// Package core provides a generic in-memory graph container with typed node
// and edge payloads, stable integer indices, adjacency indexed in both
// directions, and an immutable/mutable dual-view mutation protocol.
//
// What
//
//   - Graph[N, E]: the immutable view. Safe for any number of concurrent
//     readers, structurally comparable (Equal) and hashable (Hash), iterable
//     over (NodeIndex, payload) pairs in insertion order.
//   - MutableGraph[N, E]: the mutable view. Exposes AddNode, RemoveNode,
//     AddEdge and RemoveEdge on top of the shared read surface.
//   - View[N, E]: the read-only interface both views satisfy; every traversal
//     and algorithm in the sibling packages accepts a View.
//   - BeginMutation / EndMutation / Mutate: the protocol converting between
//     the two views with copy-on-begin semantics, so mutating a derived view
//     never disturbs the graph it came from.
//
// Why
//
//   - Integer indices (NodeIndex, EdgeIndex) are dense, allocation-ordered
//     and never reused, which makes them cheap map keys and stable handles
//     across mutations.
//   - Forward and reverse adjacency are both maintained, so walking a graph
//     against edge direction (Incoming) costs the same as walking with it.
//   - The copy-on-begin protocol gives callers snapshot isolation without a
//     single lock: an immutable Graph can be shared freely while a derived
//     MutableGraph is edited elsewhere.
//
// Directed vs. undirected
//
//	The orientation is fixed at construction (NewDirected / NewUndirected)
//	and never changes. Undirected graphs register every edge symmetrically:
//	an edge (A,B) appears in the forward and reverse adjacency of both
//	endpoints, which is what makes A a neighbor of B and B a neighbor of A
//	through the same accessors that serve directed graphs.
//
// Complexity (V = |nodes|, E = |edges|, d = degree)
//
//   - AddNode, AddEdge:            O(1) amortized
//   - RemoveEdge:                  O(d) over the endpoint lists
//   - RemoveNode:                  O(sum of incident degrees)
//   - Node/Edge/HasNode lookups:   O(1)
//   - Neighbors, Incident:         O(d)
//   - BeginMutation:               O(V + E) deep copy
//   - EndMutation:                 O(1) ownership transfer
//
// Usage
//
//	g := core.NewDirected(func(m *core.MutableGraph[string, int]) {
//	    a := m.AddNode("a")
//	    b := m.AddNode("b")
//	    m.AddEdge(a, b, 7)
//	})
//
//	// Derive a changed graph; g itself is never touched.
//	g2 := g.Mutate(func(m *core.MutableGraph[string, int]) {
//	    m.AddNode("c")
//	})
//
// Errors
//
//   - ErrNodeNotFound    if AddEdge names an absent endpoint; no state is
//     changed on failure.
//   - ErrUnhashable      if Hash meets a payload the hash function cannot
//     process (functions, channels).
//
// Lookups report absence via a second boolean result; RemoveNode and
// RemoveEdge are idempotent no-ops on absent indices. This asymmetry is
// deliberate: creation is strict, cleanup is lenient.
package core
