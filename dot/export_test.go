package dot_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravl/core"
	"github.com/katalvlaran/gravl/dot"
)

func TestExport_NilGraph(t *testing.T) {
	_, err := dot.Export[string, int](nil)
	assert.ErrorIs(t, err, dot.ErrGraphNil)

	_, err = dot.ExportWith[string, int](nil, dot.Options[string, int]{Name: "X"})
	assert.ErrorIs(t, err, dot.ErrGraphNil)
}

func TestExport_Directed(t *testing.T) {
	g := core.NewDirected[string, int](func(m *core.MutableGraph[string, int]) {
		a := m.AddNode("a")
		b := m.AddNode("b")
		_, _ = m.AddEdge(a, b, 7)
	})

	out, err := dot.Export[string, int](g)
	require.NoError(t, err)
	assert.Equal(t, `digraph G {
  "0" [label="a"];
  "1" [label="b"];
  "0" -> "1" [label="7"];
}
`, out)
}

func TestExport_Undirected(t *testing.T) {
	g := core.NewUndirected[string, int](func(m *core.MutableGraph[string, int]) {
		a := m.AddNode("a")
		b := m.AddNode("b")
		_, _ = m.AddEdge(a, b, 3)
	})

	out, err := dot.Export[string, int](g)
	require.NoError(t, err)
	assert.Equal(t, `graph G {
  "0" [label="a"];
  "1" [label="b"];
  "0" -- "1" [label="3"];
}
`, out)
}

func TestExport_Empty(t *testing.T) {
	out, err := dot.Export[string, int](core.NewDirected[string, int]())
	require.NoError(t, err)
	assert.Equal(t, "digraph G {\n}\n", out)
}

func TestExportWith_CustomNameAndLabels(t *testing.T) {
	g := core.NewDirected[string, float64](func(m *core.MutableGraph[string, float64]) {
		a := m.AddNode("alpha")
		b := m.AddNode("beta")
		_, _ = m.AddEdge(a, b, 2.5)
	})

	out, err := dot.ExportWith(g, dot.Options[string, float64]{
		Name:      "Deploy",
		NodeLabel: func(idx core.NodeIndex, payload string) string { return fmt.Sprintf("%d:%s", idx, payload) },
		EdgeLabel: func(_ core.EdgeIndex, weight float64) string { return fmt.Sprintf("%.1f", weight) },
	})
	require.NoError(t, err)
	assert.Equal(t, `digraph Deploy {
  "0" [label="0:alpha"];
  "1" [label="1:beta"];
  "0" -> "1" [label="2.5"];
}
`, out)
}

func TestExport_EscapesLabels(t *testing.T) {
	g := core.NewDirected[string, string](func(m *core.MutableGraph[string, string]) {
		a := m.AddNode(`say "hi"`)
		b := m.AddNode("line1\nline2")
		_, _ = m.AddEdge(a, b, `w="x"`)
	})

	out, err := dot.Export[string, string](g)
	require.NoError(t, err)
	assert.Equal(t, `digraph G {
  "0" [label="say \"hi\""];
  "1" [label="line1\nline2"];
  "0" -> "1" [label="w=\"x\""];
}
`, out)
}

func TestExport_SelfLoopAndParallelEdges(t *testing.T) {
	// The edge map drives emission: an undirected self-loop prints once
	// despite its double adjacency registration, parallel edges print
	// once each in insertion order.
	g := core.NewUndirected[string, int](func(m *core.MutableGraph[string, int]) {
		a := m.AddNode("a")
		b := m.AddNode("b")
		_, _ = m.AddEdge(a, a, 1)
		_, _ = m.AddEdge(a, b, 2)
		_, _ = m.AddEdge(a, b, 3)
	})

	out, err := dot.Export[string, int](g)
	require.NoError(t, err)
	assert.Equal(t, `graph G {
  "0" [label="a"];
  "1" [label="b"];
  "0" -- "0" [label="1"];
  "0" -- "1" [label="2"];
  "0" -- "1" [label="3"];
}
`, out)
}

func TestExport_MutableView(t *testing.T) {
	// Either facade serves: the exporter only reads.
	m := core.NewDirected[string, int](func(m *core.MutableGraph[string, int]) {
		m.AddNode("only")
	}).BeginMutation()

	out, err := dot.Export[string, int](m)
	require.NoError(t, err)
	assert.Equal(t, "digraph G {\n  \"0\" [label=\"only\"];\n}\n", out)
}
