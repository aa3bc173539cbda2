package core

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// View is the read-only surface shared by Graph and MutableGraph. Every
// traversal and algorithm in the sibling packages accepts a View, so both
// facades can be queried interchangeably.
//
// Slice-returning methods hand out copies; mutating a returned slice never
// affects the graph.
type View[N, E any] interface {
	// Directed reports the orientation fixed at construction.
	Directed() bool

	// NodeCount returns the number of live nodes.
	NodeCount() int

	// EdgeCount returns the number of live edges.
	EdgeCount() int

	// HasNode reports whether idx is a live node index.
	HasNode(idx NodeIndex) bool

	// Node returns the payload stored at idx, and whether idx exists.
	Node(idx NodeIndex) (N, bool)

	// NodeIndices returns every live node index in insertion order
	// (ascending, since indices are allocated monotonically).
	NodeIndices() []NodeIndex

	// Edge returns the edge record stored at idx, and whether idx exists.
	Edge(idx EdgeIndex) (EdgeData[E], bool)

	// EdgeIndices returns every live edge index in insertion order.
	EdgeIndices() []EdgeIndex

	// HasEdge reports whether at least one edge connects source to target,
	// by scanning source's forward adjacency. Parallel edges beyond the
	// first are not distinguished.
	HasEdge(source, target NodeIndex) bool

	// Neighbors returns the far endpoint of each edge in idx's forward
	// adjacency, in edge-insertion order. Parallel edges repeat their
	// endpoint; absent nodes yield an empty slice.
	Neighbors(idx NodeIndex) []NodeIndex

	// NeighborsDirected is Neighbors parameterized by adjacency side:
	// Outgoing walks the forward lists, Incoming the reverse lists.
	NeighborsDirected(idx NodeIndex, dir Direction) []NodeIndex

	// Incident returns the edge indices of idx's adjacency list on the
	// given side, in edge-insertion order.
	Incident(idx NodeIndex, dir Direction) []EdgeIndex

	// KnownAcyclic exposes the acyclicity cache: acyclic is meaningful
	// only when known is true. Mutation tracking keeps the cache honest;
	// a false known simply means a traversal has to decide.
	KnownAcyclic() (acyclic, known bool)
}

// Both views must satisfy View.
var (
	_ View[int, int] = (*Graph[int, int])(nil)
	_ View[int, int] = (*MutableGraph[int, int])(nil)
)

// reader implements the View query surface over a backing store. Graph and
// MutableGraph embed it; only MutableGraph adds mutation on top.
type reader[N, E any] struct {
	data     *graphData[N, E]
	directed bool
}

func (r *reader[N, E]) Directed() bool { return r.directed }

func (r *reader[N, E]) NodeCount() int { return r.data.nodeCount }

func (r *reader[N, E]) EdgeCount() int { return r.data.edgeCount }

func (r *reader[N, E]) HasNode(idx NodeIndex) bool {
	_, ok := r.data.nodes.Get(idx)

	return ok
}

func (r *reader[N, E]) Node(idx NodeIndex) (N, bool) {
	return r.data.nodes.Get(idx)
}

func (r *reader[N, E]) NodeIndices() []NodeIndex {
	out := make([]NodeIndex, 0, r.data.nodes.Len())
	for p := r.data.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

func (r *reader[N, E]) Edge(idx EdgeIndex) (EdgeData[E], bool) {
	return r.data.edges.Get(idx)
}

func (r *reader[N, E]) EdgeIndices() []EdgeIndex {
	out := make([]EdgeIndex, 0, r.data.edges.Len())
	for p := r.data.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

func (r *reader[N, E]) HasEdge(source, target NodeIndex) bool {
	list, _ := r.data.adjacency.Get(source)
	for _, e := range list {
		if ed, ok := r.data.edges.Get(e); ok && ed.Other(source) == target {
			return true
		}
	}

	return false
}

func (r *reader[N, E]) Neighbors(idx NodeIndex) []NodeIndex {
	return r.NeighborsDirected(idx, Outgoing)
}

func (r *reader[N, E]) NeighborsDirected(idx NodeIndex, dir Direction) []NodeIndex {
	list, _ := r.adjacencySide(dir).Get(idx)
	out := make([]NodeIndex, 0, len(list))
	for _, e := range list {
		ed, ok := r.data.edges.Get(e)
		if !ok {
			continue
		}
		out = append(out, ed.Other(idx))
	}

	return out
}

func (r *reader[N, E]) Incident(idx NodeIndex, dir Direction) []EdgeIndex {
	list, _ := r.adjacencySide(dir).Get(idx)

	return copyEdgeList(list)
}

func (r *reader[N, E]) KnownAcyclic() (acyclic, known bool) {
	switch r.data.acyclic {
	case acyclicYes:
		return true, true
	case acyclicNo:
		return false, true
	default:
		return false, false
	}
}

// adjacencySide maps a Direction onto the matching adjacency map. Unknown
// values fall back to Outgoing; option validation upstream keeps them out.
func (r *reader[N, E]) adjacencySide(dir Direction) *orderedmap.OrderedMap[NodeIndex, []EdgeIndex] {
	if dir == Incoming {
		return r.data.reverseAdjacency
	}

	return r.data.adjacency
}
