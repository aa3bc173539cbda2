package traverse

import (
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

// dfsFrame is one explicit-stack entry: the node being expanded, its
// incident edges on the walk side, and the cursor into that list.
type dfsFrame struct {
	node   core.NodeIndex
	edges  []core.EdgeIndex
	cursor int
}

// dfsWalker carries the per-run state of one DFS call.
type dfsWalker[N, E any] struct {
	graph core.View[N, E]
	opts  Options
	visit Visitor
	state map[core.NodeIndex]int
	stack []dfsFrame
}

// DFS runs an event-driven depth-first walk over g, reporting every
// discovery, edge classification and finish to visit. The walk is
// iterative (explicit stack), so arbitrarily deep graphs do not exhaust
// goroutine stack space.
//
// Empty starts means every node in insertion order (forest traversal);
// explicit starts run in the given order, skipping roots already
// discovered by an earlier tree. Break from the visitor aborts the whole
// call with a nil error; the error paths are nil inputs, unknown starts,
// option violations and context cancellation.
func DFS[N, E any](g core.View[N, E], visit Visitor, starts []core.NodeIndex, opts ...Option) error {
	// 1. Validate inputs.
	if g == nil {
		return ErrGraphNil
	}
	if visit == nil {
		return ErrVisitorNil
	}

	// 2. Fold options and surface violations.
	o, err := applyOptions(opts)
	if err != nil {
		return err
	}

	// 3. Resolve the start set: explicit list or whole graph.
	roots, err := resolveStarts(g, starts)
	if err != nil {
		return err
	}

	// 4. Expand one tree per still-undiscovered root.
	w := &dfsWalker[N, E]{
		graph: g,
		opts:  o,
		visit: visit,
		state: make(map[core.NodeIndex]int, g.NodeCount()),
	}
	var done bool
	for _, root := range roots {
		if w.state[root] != white {
			continue
		}
		if done, err = w.walk(root); err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	return nil
}

// walk expands one DFS tree rooted at root. The done result reports a
// Break directive, which the caller turns into an immediate return.
func (w *dfsWalker[N, E]) walk(root core.NodeIndex) (bool, error) {
	// 1. Discover the root and honor the visitor's first directive.
	w.state[root] = gray
	switch w.visit(Event{Kind: DiscoverNode, Node: root}) {
	case Break:
		return true, nil
	case Prune:
		w.state[root] = black

		return false, nil
	}

	// 2. Seed the explicit stack with the root frame.
	w.stack = append(w.stack[:0], dfsFrame{node: root, edges: w.graph.Incident(root, w.opts.Direction)})

	// 3. Expand frames until the tree is exhausted.
	for len(w.stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]

		// 3a. Frame exhausted: the node finishes and pops.
		if top.cursor >= len(top.edges) {
			node := top.node
			w.state[node] = black
			w.stack = w.stack[:len(w.stack)-1]
			if w.visit(Event{Kind: FinishNode, Node: node}) == Break {
				return true, nil
			}

			continue
		}

		// 3b. Classify the next incident edge against the run state.
		edgeIdx := top.edges[top.cursor]
		top.cursor++
		ed, ok := w.graph.Edge(edgeIdx)
		if !ok {
			continue
		}
		source := top.node
		target := ed.Other(source)

		switch w.state[target] {
		case white:
			// Tree edge first, then the target's own discovery.
			if w.visit(Event{Kind: TreeEdge, Edge: edgeIdx, Source: source, Target: target}) == Break {
				return true, nil
			}
			w.state[target] = gray
			switch w.visit(Event{Kind: DiscoverNode, Node: target}) {
			case Break:
				return true, nil
			case Prune:
				w.state[target] = black

				continue
			}
			// Growing the stack may relocate frames; top is not touched
			// again within this iteration.
			w.stack = append(w.stack, dfsFrame{node: target, edges: w.graph.Incident(target, w.opts.Direction)})
		case gray:
			if w.visit(Event{Kind: BackEdge, Edge: edgeIdx, Source: source, Target: target}) == Break {
				return true, nil
			}
		default:
			if w.visit(Event{Kind: CrossEdge, Edge: edgeIdx, Source: source, Target: target}) == Break {
				return true, nil
			}
		}
	}

	return false, nil
}

// resolveStarts returns the traversal roots: an explicit list validated
// against the graph, or every node in insertion order when starts is
// empty.
func resolveStarts[N, E any](g core.View[N, E], starts []core.NodeIndex) ([]core.NodeIndex, error) {
	if len(starts) == 0 {
		return g.NodeIndices(), nil
	}
	for _, s := range starts {
		if !g.HasNode(s) {
			return nil, fmt.Errorf("%w: %d", ErrStartNotFound, s)
		}
	}

	return starts, nil
}
