package traverse

import (
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

// Nodes returns the discovery order of a standard walk over g: DepthFirst
// runs DFS, BreadthFirst runs BFS. It is a thin projection over the event
// engine observing only DiscoverNode, so it shares the engines' start
// handling, direction option and cancellation behavior.
func Nodes[N, E any](g core.View[N, E], mode Mode, starts []core.NodeIndex, opts ...Option) ([]core.NodeIndex, error) {
	// 1. Validate the graph here too: the capacity hint reads it before
	//    either engine gets the chance to reject nil.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Collect discoveries in visit order.
	order := make([]core.NodeIndex, 0, g.NodeCount())
	collect := func(ev Event) Control {
		if ev.Kind == DiscoverNode {
			order = append(order, ev.Node)
		}

		return Continue
	}

	// 3. Dispatch on the requested order.
	var err error
	switch mode {
	case DepthFirst:
		err = DFS(g, collect, starts, opts...)
	case BreadthFirst:
		err = BFS(g, collect, starts, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, mode)
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}
