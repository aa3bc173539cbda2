// Package build defines the constructor, payload-function and sentinel
// types shared by the topology generators.
package build

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/gravl/core"
)

// Sentinel errors for generator validation.
var (
	// ErrTooFewNodes is returned when a size parameter is below the
	// constructor's minimum.
	ErrTooFewNodes = errors.New("build: node count too small")

	// ErrInvalidProbability is returned when an edge probability lies
	// outside [0, 1].
	ErrInvalidProbability = errors.New("build: probability out of range")

	// ErrConstructFailed is returned when a graph cannot be assembled,
	// for example because a nil constructor was supplied.
	ErrConstructFailed = errors.New("build: construction failed")
)

// NodeFn produces the payload for a constructor's ordinal-th node.
// Ordinals start at 0 and restart for every constructor; the graph-wide
// node indices are allocated by the graph itself.
type NodeFn[N any] func(ordinal int) N

// EdgeFn produces the payload for an emitted edge, given the allocated
// endpoint indices. It runs once per emitted edge, so on directed grids
// the mirror edge receives its own payload.
type EdgeFn[E any] func(source, target core.NodeIndex) E

// Ordinals is a NodeFn storing each node's ordinal as its payload.
func Ordinals() NodeFn[int] {
	return func(ordinal int) int { return ordinal }
}

// Labels is a NodeFn producing "prefix0", "prefix1", ... payloads.
func Labels(prefix string) NodeFn[string] {
	return func(ordinal int) string { return prefix + strconv.Itoa(ordinal) }
}

// nodeFnOrZero substitutes zero-value payloads for a nil NodeFn.
func nodeFnOrZero[N any](fn NodeFn[N]) NodeFn[N] {
	if fn != nil {
		return fn
	}

	return func(int) N {
		var zero N

		return zero
	}
}

// edgeFnOrZero substitutes zero-value payloads for a nil EdgeFn.
func edgeFnOrZero[E any](fn EdgeFn[E]) EdgeFn[E] {
	if fn != nil {
		return fn
	}

	return func(core.NodeIndex, core.NodeIndex) E {
		var zero E

		return zero
	}
}
