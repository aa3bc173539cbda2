// Package traverse defines the event, control and option types shared by
// the depth-first and breadth-first engines.
package traverse

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned when a nil graph view is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrVisitorNil is returned when no visitor callback is supplied.
	ErrVisitorNil = errors.New("traverse: visitor is nil")

	// ErrStartNotFound is returned when a listed start index is absent
	// from the graph.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")
)

// Per-run node states. Each engine keeps its own map; nothing is stored
// on the graph.
const (
	white = iota // undiscovered
	gray         // discovered, expansion pending or in progress
	black        // finished
)

// EventKind names the observations a Visitor receives.
type EventKind uint8

const (
	// DiscoverNode fires when a node turns discovered (first visit).
	DiscoverNode EventKind = iota

	// TreeEdge fires for an edge whose far endpoint is undiscovered; the
	// endpoint is discovered immediately after.
	TreeEdge

	// BackEdge fires for an edge whose far endpoint is discovered but not
	// finished. In a directed DFS this witnesses a cycle.
	BackEdge

	// CrossEdge fires for an edge whose far endpoint is already finished.
	CrossEdge

	// FinishNode fires when a node's expansion is complete.
	FinishNode
)

// String returns the event kind name for diagnostics.
func (k EventKind) String() string {
	switch k {
	case DiscoverNode:
		return "DiscoverNode"
	case TreeEdge:
		return "TreeEdge"
	case BackEdge:
		return "BackEdge"
	case CrossEdge:
		return "CrossEdge"
	case FinishNode:
		return "FinishNode"
	default:
		return "EventKind(invalid)"
	}
}

// Event is one observation delivered to a Visitor. Node is set on
// DiscoverNode and FinishNode; Edge, Source and Target are set on the
// three edge kinds, with Target already resolved to the far endpoint as
// seen from Source.
type Event struct {
	Kind   EventKind
	Node   core.NodeIndex
	Edge   core.EdgeIndex
	Source core.NodeIndex
	Target core.NodeIndex
}

// Control is a Visitor's directive back to the engine.
type Control uint8

const (
	// Continue proceeds normally.
	Continue Control = iota

	// Break aborts the entire call, remaining start nodes included.
	Break

	// Prune, on DiscoverNode, finishes the node without expanding it and
	// without a FinishNode event. On any other event it acts as Continue.
	Prune
)

// String returns the control name for diagnostics.
func (c Control) String() string {
	switch c {
	case Continue:
		return "Continue"
	case Break:
		return "Break"
	case Prune:
		return "Prune"
	default:
		return "Control(invalid)"
	}
}

// Visitor receives every traversal event and steers the engine.
type Visitor func(Event) Control

// Mode selects the order Nodes produces.
type Mode uint8

const (
	// DepthFirst yields DFS discovery order.
	DepthFirst Mode = iota

	// BreadthFirst yields BFS discovery (level) order.
	BreadthFirst
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case DepthFirst:
		return "DepthFirst"
	case BreadthFirst:
		return "BreadthFirst"
	default:
		return "Mode(invalid)"
	}
}

// Option configures traversal behavior via functional arguments. An
// invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the traversal is invoked.
type Option func(*Options)

// Options holds the parameters shared by DFS, BFS and Nodes.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per loop turn.
	Ctx context.Context

	// Direction selects the adjacency side the walk follows:
	// core.Outgoing follows edges forward, core.Incoming walks the
	// transpose.
	Direction core.Direction

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and forward
// (Outgoing) direction.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Direction: core.Outgoing,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDirection selects the adjacency side the walk follows. Any value
// other than core.Outgoing or core.Incoming is an option violation.
func WithDirection(dir core.Direction) Option {
	return func(o *Options) {
		if dir != core.Outgoing && dir != core.Incoming {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, dir)

			return
		}
		o.Direction = dir
	}
}

// applyOptions folds opts over the defaults and reports the first
// recorded violation.
func applyOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
