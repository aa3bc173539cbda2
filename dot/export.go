package dot

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gravl/core"
)

// labelEscaper guards the quoted label attributes: raw quotes would
// terminate them, raw newlines would break the line structure.
var labelEscaper = strings.NewReplacer(`"`, `\"`, "\n", `\n`)

// Export renders g as GraphViz DOT text with default options.
func Export[N, E any](g core.View[N, E]) (string, error) {
	return ExportWith(g, Options[N, E]{})
}

// ExportWith renders g as GraphViz DOT text: a digraph or graph header
// per orientation, one line per node and one line per edge, each in
// insertion order. Node identifiers are the quoted integer indices, so
// payloads appear only in labels. The output targets rendering tools;
// it is not meant to be parsed back into a graph.
func ExportWith[N, E any](g core.View[N, E], opts Options[N, E]) (string, error) {
	// 1. Validate input and resolve defaults.
	if g == nil {
		return "", ErrGraphNil
	}
	name := opts.Name
	if name == "" {
		name = defaultName
	}
	nodeLabel := opts.NodeLabel
	if nodeLabel == nil {
		nodeLabel = func(_ core.NodeIndex, payload N) string { return fmt.Sprintf("%v", payload) }
	}
	edgeLabel := opts.EdgeLabel
	if edgeLabel == nil {
		edgeLabel = func(_ core.EdgeIndex, payload E) string { return fmt.Sprintf("%v", payload) }
	}

	// 2. Pick the dialect from the orientation tag.
	keyword, arrow := "graph", "--"
	if g.Directed() {
		keyword, arrow = "digraph", "->"
	}

	// 3. Emit header, node lines and edge lines.
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s {\n", keyword, name)
	for _, idx := range g.NodeIndices() {
		payload, _ := g.Node(idx)
		fmt.Fprintf(&sb, "  \"%d\" [label=\"%s\"];\n",
			idx, labelEscaper.Replace(nodeLabel(idx, payload)))
	}
	for _, idx := range g.EdgeIndices() {
		edge, _ := g.Edge(idx)
		fmt.Fprintf(&sb, "  \"%d\" %s \"%d\" [label=\"%s\"];\n",
			edge.Source, arrow, edge.Target, labelEscaper.Replace(edgeLabel(idx, edge.Data)))
	}
	sb.WriteString("}\n")

	return sb.String(), nil
}
