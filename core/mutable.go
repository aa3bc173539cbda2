package core

// MutableGraph is the exclusively owned working copy produced by
// Graph.BeginMutation. It answers the full View query surface and accepts
// mutations; confine each instance to a single goroutine.
type MutableGraph[N, E any] struct {
	reader[N, E]
}

// EndMutation seals the working copy into an immutable Graph. Ownership of
// the store transfers to the result, so the receiver must not be used
// afterwards.
func (m *MutableGraph[N, E]) EndMutation() *Graph[N, E] {
	return &Graph[N, E]{reader[N, E]{data: m.data, directed: m.directed}}
}

// AddNode stores payload under a fresh index and returns it. Indices grow
// monotonically and are never reused, even after removals, so they stay
// valid as external handles across mutation cycles.
func (m *MutableGraph[N, E]) AddNode(payload N) NodeIndex {
	return m.data.addNode(payload)
}

// RemoveNode deletes idx together with every incident edge, in both
// orientations. Removing an absent index is a no-op returning false.
func (m *MutableGraph[N, E]) RemoveNode(idx NodeIndex) bool {
	removed := m.data.dropNode(idx, m.directed)
	if removed {
		m.data.acyclic = acyclicUnknown
	}

	return removed
}

// AddEdge connects source to target carrying data and returns the new
// edge index. Both endpoints must already exist; otherwise ErrNodeNotFound
// is returned and the graph is left untouched. Self-loops and parallel
// edges are permitted.
func (m *MutableGraph[N, E]) AddEdge(source, target NodeIndex, data E) (EdgeIndex, error) {
	return m.data.addEdge(source, target, data, m.directed)
}

// RemoveEdge deletes idx from the edge store and from every adjacency list
// it appears in. Removing an absent index is a no-op returning false.
func (m *MutableGraph[N, E]) RemoveEdge(idx EdgeIndex) bool {
	removed := m.data.dropEdge(idx, m.directed)
	if removed {
		m.data.acyclic = acyclicUnknown
	}

	return removed
}
