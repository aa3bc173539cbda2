// Package traverse implements event-driven traversal over a core.View:
// depth-first and breadth-first walks that report every node discovery,
// edge classification and node finish to a visitor callback, plus a
// simple discovery-order iterator for callers that only need node order.
//
// What
//
//   - DFS: iterative depth-first walk driven by an explicit frame stack.
//   - BFS: breadth-first walk driven by an explicit FIFO queue.
//   - Nodes: the discovery order of either walk, materialized as a slice.
//   - Visitor: func(Event) Control, where Control is Continue, Break or
//     Prune.
//
// Event model
//
// Each run keeps its own tri-state bookkeeping (undiscovered, discovered,
// finished); nothing is persisted on the graph. A walk emits DiscoverNode
// once per reached node, one edge event per incident edge examined, and
// FinishNode when a node's expansion is complete:
//
//   - TreeEdge: the far endpoint was undiscovered and is discovered next,
//     extending the spanning forest.
//   - BackEdge: the far endpoint is discovered but not finished. In a
//     directed DFS this is an ancestor on the current path, witnessing a
//     cycle.
//   - CrossEdge: the far endpoint is already finished.
//
// DFS and BFS classify against their own notion of "finished": a DFS node
// finishes when its whole subtree was expanded, a BFS node when the
// expansion after its dequeue completes. The same edge can therefore
// classify differently under the two walks.
//
// Control flow
//
//   - Continue: proceed normally.
//   - Break: abort the entire call, remaining start nodes included. The
//     engine returns nil; a deliberate abort is not an error.
//   - Prune, on DiscoverNode: mark the node finished without expanding it
//     and without a FinishNode event. On any other event it acts as
//     Continue.
//
// Usage
//
//	err := traverse.DFS(g, func(ev traverse.Event) traverse.Control {
//		if ev.Kind == traverse.BackEdge {
//			return traverse.Break
//		}
//		return traverse.Continue
//	}, nil)
//
// A nil or empty starts slice walks every node in insertion order (forest
// traversal). Explicit starts are processed in the given order; a start
// already discovered by an earlier tree is skipped, and a start absent
// from the graph yields ErrStartNotFound.
//
// Options
//
//   - WithContext(ctx): cancellation and deadlines, checked once per loop
//     turn; the walk returns ctx.Err().
//   - WithDirection(core.Incoming): walk reverse adjacency, traversing
//     the transpose of a directed graph.
//
// Errors
//
//   - ErrGraphNil, ErrVisitorNil: nil inputs.
//   - ErrStartNotFound: a listed start index is not in the graph.
//   - ErrOptionViolation: an option carried an invalid value.
//
// Complexity: O(V+E) time per call, O(V) auxiliary space for state and
// stack/queue.
package traverse
