package core

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

// Graph is the immutable facade over a graph store. It only exposes the
// View query surface plus the mutation protocol entry points; any number
// of goroutines may read a Graph concurrently without synchronization.
//
// To change a Graph, obtain a MutableGraph with BeginMutation (or use
// Mutate), apply mutations, and seal the result with EndMutation. The
// original Graph is never touched by that cycle.
type Graph[N, E any] struct {
	reader[N, E]
}

// NewDirected returns an empty directed graph. Optional seed callbacks run
// in order against a single mutation cycle, so a populated graph can be
// built in one expression.
func NewDirected[N, E any](seed ...func(*MutableGraph[N, E])) *Graph[N, E] {
	return newGraph[N, E](true, seed)
}

// NewUndirected returns an empty undirected graph, seeded the same way as
// NewDirected.
func NewUndirected[N, E any](seed ...func(*MutableGraph[N, E])) *Graph[N, E] {
	return newGraph[N, E](false, seed)
}

func newGraph[N, E any](directed bool, seed []func(*MutableGraph[N, E])) *Graph[N, E] {
	g := &Graph[N, E]{reader[N, E]{data: newGraphData[N, E](), directed: directed}}
	if len(seed) == 0 {
		return g
	}

	m := g.BeginMutation()
	for _, fn := range seed {
		fn(m)
	}

	return m.EndMutation()
}

// BeginMutation starts a mutation cycle: the entire store is copied up
// front, and the returned MutableGraph owns that copy exclusively. The
// receiver stays valid and unchanged.
func (g *Graph[N, E]) BeginMutation() *MutableGraph[N, E] {
	return &MutableGraph[N, E]{reader[N, E]{data: g.data.clone(), directed: g.directed}}
}

// Mutate runs fn against a fresh mutable copy and returns the sealed
// result. It is shorthand for BeginMutation, fn, EndMutation.
func (g *Graph[N, E]) Mutate(fn func(*MutableGraph[N, E])) *Graph[N, E] {
	m := g.BeginMutation()
	fn(m)

	return m.EndMutation()
}

// Nodes returns an iterator over index/payload pairs in insertion order.
// The graph is immutable, so the sequence is stable and may be ranged over
// concurrently.
func (g *Graph[N, E]) Nodes() iter.Seq2[NodeIndex, N] {
	return func(yield func(NodeIndex, N) bool) {
		for p := g.data.nodes.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Equal reports structural equality with other: same orientation, same
// node and edge indices with the same endpoints, and deeply equal
// payloads. Index identity matters, so two graphs built by different
// mutation histories compare unequal even when isomorphic.
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if other == nil {
		return false
	}
	if g.directed != other.directed {
		return false
	}
	if g.data.nodeCount != other.data.nodeCount || g.data.edgeCount != other.data.edgeCount {
		return false
	}

	// 1. Lockstep walk over the node maps. Monotonic allocation makes
	//    insertion order ascending index order on both sides, so a single
	//    parallel pass suffices.
	on := other.data.nodes.Oldest()
	for p := g.data.nodes.Oldest(); p != nil; p = p.Next() {
		if on == nil || p.Key != on.Key || !reflect.DeepEqual(p.Value, on.Value) {
			return false
		}
		on = on.Next()
	}

	// 2. Same walk over the edge maps, comparing endpoints before payloads.
	oe := other.data.edges.Oldest()
	for p := g.data.edges.Oldest(); p != nil; p = p.Next() {
		if oe == nil || p.Key != oe.Key {
			return false
		}
		if p.Value.Source != oe.Value.Source || p.Value.Target != oe.Value.Target {
			return false
		}
		if !reflect.DeepEqual(p.Value.Data, oe.Value.Data) {
			return false
		}
		oe = oe.Next()
	}

	return true
}

// graphDigest flattens a store into exported-field structs for hashing.
// Slices are filled in insertion order, so equal graphs digest
// identically.
type graphDigest[N, E any] struct {
	Directed bool
	Nodes    []nodeDigest[N]
	Edges    []edgeDigest[E]
}

type nodeDigest[N any] struct {
	Index NodeIndex
	Data  N
}

type edgeDigest[E any] struct {
	Index  EdgeIndex
	Source NodeIndex
	Target NodeIndex
	Data   E
}

// Hash returns an order-stable structural digest: graphs for which Equal
// holds hash to the same value. Payload types the hasher cannot walk
// (functions, channels) surface as ErrUnhashable.
func (g *Graph[N, E]) Hash() (uint64, error) {
	d := graphDigest[N, E]{
		Directed: g.directed,
		Nodes:    make([]nodeDigest[N], 0, g.data.nodeCount),
		Edges:    make([]edgeDigest[E], 0, g.data.edgeCount),
	}
	for p := g.data.nodes.Oldest(); p != nil; p = p.Next() {
		d.Nodes = append(d.Nodes, nodeDigest[N]{Index: p.Key, Data: p.Value})
	}
	for p := g.data.edges.Oldest(); p != nil; p = p.Next() {
		d.Edges = append(d.Edges, edgeDigest[E]{
			Index:  p.Key,
			Source: p.Value.Source,
			Target: p.Value.Target,
			Data:   p.Value.Data,
		})
	}

	sum, err := hashstructure.Hash(d, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnhashable, err)
	}

	return sum, nil
}
