package traverse

import (
	"github.com/katalvlaran/gravl/core"
)

// bfsWalker carries the per-run state of one BFS call.
type bfsWalker[N, E any] struct {
	graph core.View[N, E]
	opts  Options
	visit Visitor
	state map[core.NodeIndex]int
	queue []core.NodeIndex
}

// BFS runs an event-driven breadth-first walk over g. Start handling,
// control directives and the error surface match DFS; only the expansion
// order differs. Nodes are discovered when first seen (enqueued), expanded
// in FIFO order one level after another, and finish when the expansion
// following their dequeue completes, so edge classification uses BFS's own
// bookkeeping rather than DFS ancestry.
func BFS[N, E any](g core.View[N, E], visit Visitor, starts []core.NodeIndex, opts ...Option) error {
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

	// 4. Run one wave per still-undiscovered root.
	w := &bfsWalker[N, E]{
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
		if done, err = w.wave(root); err != nil {
			return err
		}
		if done {
			return nil
		}
	}

	return nil
}

// wave expands one BFS tree rooted at root. The done result reports a
// Break directive, which the caller turns into an immediate return.
func (w *bfsWalker[N, E]) wave(root core.NodeIndex) (bool, error) {
	// 1. Discover the root at enqueue time.
	w.state[root] = gray
	switch w.visit(Event{Kind: DiscoverNode, Node: root}) {
	case Break:
		return true, nil
	case Prune:
		w.state[root] = black

		return false, nil
	}
	w.queue = append(w.queue[:0], root)

	// 2. Dequeue and expand until the level order is exhausted.
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return false, w.opts.Ctx.Err()
		default:
		}

		node := w.queue[0]
		w.queue = w.queue[1:]

		// 2a. Classify each incident edge; discover and enqueue white
		//     targets.
		for _, edgeIdx := range w.graph.Incident(node, w.opts.Direction) {
			ed, ok := w.graph.Edge(edgeIdx)
			if !ok {
				continue
			}
			target := ed.Other(node)

			switch w.state[target] {
			case white:
				if w.visit(Event{Kind: TreeEdge, Edge: edgeIdx, Source: node, Target: target}) == Break {
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
				w.queue = append(w.queue, target)
			case gray:
				if w.visit(Event{Kind: BackEdge, Edge: edgeIdx, Source: node, Target: target}) == Break {
					return true, nil
				}
			default:
				if w.visit(Event{Kind: CrossEdge, Edge: edgeIdx, Source: node, Target: target}) == Break {
					return true, nil
				}
			}
		}

		// 2b. Expansion complete: the node leaves the frontier for good.
		w.state[node] = black
		if w.visit(Event{Kind: FinishNode, Node: node}) == Break {
			return true, nil
		}
	}

	return false, nil
}
