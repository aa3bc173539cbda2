// Package dot defines the options and sentinel errors for GraphViz
// export.
package dot

import (
	"errors"

	"github.com/katalvlaran/gravl/core"
)

// ErrGraphNil is returned when a nil graph view is passed.
var ErrGraphNil = errors.New("dot: graph is nil")

// defaultName identifies the graph when Options.Name is empty.
const defaultName = "G"

// Options configures the emitted DOT text. The zero value means
// defaults: graph name "G" and %v-formatted payload labels.
type Options[N, E any] struct {
	// Name is emitted verbatim after the digraph/graph keyword.
	Name string

	// NodeLabel renders one node's label from its index and payload;
	// nil falls back to fmt.Sprintf("%v", payload).
	NodeLabel func(idx core.NodeIndex, payload N) string

	// EdgeLabel renders one edge's label from its index and payload;
	// nil falls back to fmt.Sprintf("%v", payload).
	EdgeLabel func(idx core.EdgeIndex, payload E) string
}
