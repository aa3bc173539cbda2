package core

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// graphData is the sole mutable state container behind both views. Node,
// edge and adjacency storage all use insertion-ordered maps, so iteration
// order is allocation order and therefore deterministic.
type graphData[N, E any] struct {
	nodes *orderedmap.OrderedMap[NodeIndex, N]
	edges *orderedmap.OrderedMap[EdgeIndex, EdgeData[E]]

	// adjacency holds, per node, the edges leaving (directed) or incident
	// to (undirected) that node; reverseAdjacency mirrors it for edges
	// entering the node. Undirected edges are registered in all four
	// endpoint lists.
	adjacency        *orderedmap.OrderedMap[NodeIndex, []EdgeIndex]
	reverseAdjacency *orderedmap.OrderedMap[NodeIndex, []EdgeIndex]

	// Live cardinalities, maintained incrementally; always equal to the
	// respective map's Len.
	nodeCount int
	edgeCount int

	// Next indices to allocate. Monotonic, carried through clone, never
	// rewound; removed indices are not reused.
	nextNode NodeIndex
	nextEdge EdgeIndex

	acyclic acyclicState
}

// newGraphData returns an empty store. An empty graph has no cycles, so
// the acyclicity cache starts at a known "yes".
func newGraphData[N, E any]() *graphData[N, E] {
	return &graphData[N, E]{
		nodes:            orderedmap.New[NodeIndex, N](),
		edges:            orderedmap.New[EdgeIndex, EdgeData[E]](),
		adjacency:        orderedmap.New[NodeIndex, []EdgeIndex](),
		reverseAdjacency: orderedmap.New[NodeIndex, []EdgeIndex](),
		acyclic:          acyclicYes,
	}
}

// clone produces a store sharing no mutable substructure with d: adjacency
// value slices are copied element-wise, node/edge entries are copied by
// value, counters and the acyclicity cache carry over verbatim.
func (d *graphData[N, E]) clone() *graphData[N, E] {
	c := &graphData[N, E]{
		nodes:            orderedmap.New[NodeIndex, N](d.nodes.Len()),
		edges:            orderedmap.New[EdgeIndex, EdgeData[E]](d.edges.Len()),
		adjacency:        orderedmap.New[NodeIndex, []EdgeIndex](d.adjacency.Len()),
		reverseAdjacency: orderedmap.New[NodeIndex, []EdgeIndex](d.reverseAdjacency.Len()),
		nodeCount:        d.nodeCount,
		edgeCount:        d.edgeCount,
		nextNode:         d.nextNode,
		nextEdge:         d.nextEdge,
		acyclic:          d.acyclic,
	}
	for p := d.nodes.Oldest(); p != nil; p = p.Next() {
		c.nodes.Set(p.Key, p.Value)
	}
	for p := d.edges.Oldest(); p != nil; p = p.Next() {
		c.edges.Set(p.Key, p.Value)
	}
	for p := d.adjacency.Oldest(); p != nil; p = p.Next() {
		c.adjacency.Set(p.Key, copyEdgeList(p.Value))
	}
	for p := d.reverseAdjacency.Oldest(); p != nil; p = p.Next() {
		c.reverseAdjacency.Set(p.Key, copyEdgeList(p.Value))
	}

	return c
}

// copyEdgeList returns an independent copy of an adjacency value slice.
func copyEdgeList(src []EdgeIndex) []EdgeIndex {
	dst := make([]EdgeIndex, len(src))
	copy(dst, src)

	return dst
}

// addNode allocates the next node index, stores the payload and installs
// empty adjacency entries. Never fails; does not touch the acyclicity
// cache (an isolated node cannot create a cycle).
func (d *graphData[N, E]) addNode(data N) NodeIndex {
	idx := d.nextNode
	d.nextNode++
	d.nodes.Set(idx, data)
	d.adjacency.Set(idx, []EdgeIndex{})
	d.reverseAdjacency.Set(idx, []EdgeIndex{})
	d.nodeCount++

	return idx
}

// addEdge validates both endpoints before touching any state, then stores
// the edge record, registers it in the adjacency lists per the graph's
// orientation and invalidates the acyclicity cache.
func (d *graphData[N, E]) addEdge(source, target NodeIndex, data E, directed bool) (EdgeIndex, error) {
	if _, ok := d.nodes.Get(source); !ok {
		return 0, fmt.Errorf("%w: source %d", ErrNodeNotFound, source)
	}
	if _, ok := d.nodes.Get(target); !ok {
		return 0, fmt.Errorf("%w: target %d", ErrNodeNotFound, target)
	}

	idx := d.nextEdge
	d.nextEdge++
	d.edges.Set(idx, EdgeData[E]{Source: source, Target: target, Data: data})

	// Directed: once in adjacency[source], once in reverseAdjacency[target].
	// Undirected: additionally the two mirror registrations, so both
	// endpoints see the edge from both sides.
	d.pushEdge(d.adjacency, source, idx)
	d.pushEdge(d.reverseAdjacency, target, idx)
	if !directed {
		d.pushEdge(d.adjacency, target, idx)
		d.pushEdge(d.reverseAdjacency, source, idx)
	}

	d.edgeCount++
	d.acyclic = acyclicUnknown

	return idx, nil
}

// dropEdge removes idx from the edge map and from every adjacency list it
// appears in. Reports whether the edge existed; the acyclicity cache is
// left to the caller (RemoveNode invalidates once for a whole batch).
func (d *graphData[N, E]) dropEdge(idx EdgeIndex, directed bool) bool {
	ed, ok := d.edges.Get(idx)
	if !ok {
		return false
	}

	d.cutEdge(d.adjacency, ed.Source, idx)
	d.cutEdge(d.reverseAdjacency, ed.Target, idx)
	if !directed {
		d.cutEdge(d.adjacency, ed.Target, idx)
		d.cutEdge(d.reverseAdjacency, ed.Source, idx)
	}

	d.edges.Delete(idx)
	d.edgeCount--

	return true
}

// dropNode removes the node with every incident edge. Reports whether the
// node existed. The incident list is collected from both adjacency sides
// first; duplicates (self-loops, undirected mirrors) are harmless because
// dropEdge no-ops on indices it has already removed.
func (d *graphData[N, E]) dropNode(idx NodeIndex, directed bool) bool {
	if _, ok := d.nodes.Get(idx); !ok {
		return false
	}

	fwd, _ := d.adjacency.Get(idx)
	rev, _ := d.reverseAdjacency.Get(idx)
	incident := make([]EdgeIndex, 0, len(fwd)+len(rev))
	incident = append(incident, fwd...)
	incident = append(incident, rev...)
	for _, e := range incident {
		d.dropEdge(e, directed)
	}

	d.nodes.Delete(idx)
	d.adjacency.Delete(idx)
	d.reverseAdjacency.Delete(idx)
	d.nodeCount--

	return true
}

// pushEdge appends idx to node's list in m.
func (d *graphData[N, E]) pushEdge(m *orderedmap.OrderedMap[NodeIndex, []EdgeIndex], node NodeIndex, idx EdgeIndex) {
	list, _ := m.Get(node)
	m.Set(node, append(list, idx))
}

// cutEdge filters every occurrence of idx out of node's list in m.
func (d *graphData[N, E]) cutEdge(m *orderedmap.OrderedMap[NodeIndex, []EdgeIndex], node NodeIndex, idx EdgeIndex) {
	list, ok := m.Get(node)
	if !ok {
		return
	}
	kept := list[:0]
	for _, e := range list {
		if e != idx {
			kept = append(kept, e)
		}
	}
	m.Set(node, kept)
}
