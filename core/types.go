// Package core defines the index, direction and edge types shared by both
// graph views, plus the package's sentinel errors.
package core

import "errors"

var (
	// ErrNodeNotFound is returned when AddEdge references a node index
	// that is not present in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrUnhashable is returned by Graph.Hash when a payload cannot be
	// hashed (it contains a function, channel, or similar).
	ErrUnhashable = errors.New("core: payload not hashable")
)

// NodeIndex identifies a node within one graph instance. Indices are
// assigned monotonically from 0 and never reused, so they stay valid as
// handles for as long as the node exists.
type NodeIndex int

// EdgeIndex identifies an edge within one graph instance. Like node
// indices, edge indices are monotonic and never reused.
type EdgeIndex int

// Direction selects which adjacency side a query walks.
type Direction uint8

const (
	// Outgoing follows edges away from a node (forward adjacency).
	// For undirected graphs both endpoints see every incident edge here.
	Outgoing Direction = iota

	// Incoming follows edges toward a node (reverse adjacency),
	// effectively walking the transpose of a directed graph.
	Incoming
)

// String returns the direction name for diagnostics.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "Outgoing"
	case Incoming:
		return "Incoming"
	default:
		return "Direction(invalid)"
	}
}

// EdgeData couples an edge's endpoints with its payload. Source and Target
// never change after AddEdge; accessors hand out copies, so callers cannot
// alter the stored record.
type EdgeData[E any] struct {
	Source NodeIndex
	Target NodeIndex
	Data   E
}

// Other returns the endpoint of e opposite to node: the target when node
// is the source, otherwise the source. Self-loops resolve to node itself.
// This is the single endpoint rule every adjacency query applies, which is
// what keeps directed and undirected graphs behind one accessor surface.
func (e EdgeData[E]) Other(node NodeIndex) NodeIndex {
	if e.Source == node {
		return e.Target
	}

	return e.Source
}

// acyclicState is the tri-state cycle-freeness cache kept on the backing
// store: unknown until computed, invalidated back to unknown by mutations
// that can change cycle structure.
type acyclicState uint8

const (
	acyclicUnknown acyclicState = iota
	acyclicYes
	acyclicNo
)
