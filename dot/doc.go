// Package dot renders a graph as GraphViz DOT text for visual
// inspection: a digraph or graph block with one line per node and one
// line per edge, both in insertion order.
//
// What
//
//   - Export: default rendering, graph name "G" and %v-formatted
//     payload labels.
//   - ExportWith: the same with a custom graph name and custom label
//     functions per node and per edge.
//
// Node identifiers in the output are the quoted integer indices;
// payloads only ever appear inside label attributes, where quotes and
// newlines are escaped. Either graph facade serves as input, since the
// exporter only reads.
//
// Usage
//
//	text, err := dot.Export(g)
//	if err != nil {
//		return err
//	}
//	os.WriteFile("graph.dot", []byte(text), 0o644)
//
// The text is a one-way export for rendering tools (dot, xdot, online
// viewers); parsing it back into a graph is not supported.
//
// Errors
//
//   - ErrGraphNil  if the view is nil.
//
// Complexity: O(V + E) time and output size.
package dot
