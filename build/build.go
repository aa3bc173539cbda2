package build

import (
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

// Constructor appends one topology to the graph under construction. Each
// constructor allocates its own nodes, so composing several yields the
// disjoint union of their shapes; validation failures surface as sentinel
// errors before any state is touched.
type Constructor[N, E any] func(*core.MutableGraph[N, E]) error

// Directed assembles a directed graph by applying constructors in order
// within one mutation cycle. The first failing constructor aborts the
// build and its error is returned.
func Directed[N, E any](cons ...Constructor[N, E]) (*core.Graph[N, E], error) {
	return assemble(core.NewDirected[N, E](), cons)
}

// Undirected is Directed's undirected counterpart.
func Undirected[N, E any](cons ...Constructor[N, E]) (*core.Graph[N, E], error) {
	return assemble(core.NewUndirected[N, E](), cons)
}

// assemble runs the constructor chain against a single mutable view and
// seals the result. Constructor order is the composition order, so equal
// inputs produce identical graphs.
func assemble[N, E any](g *core.Graph[N, E], cons []Constructor[N, E]) (*core.Graph[N, E], error) {
	m := g.BeginMutation()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%w: nil constructor at index %d", ErrConstructFailed, i)
		}
		if err := fn(m); err != nil {
			return nil, err
		}
	}

	return m.EndMutation(), nil
}
