package core_test

import (
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

// Build a small dependency graph, then derive a trimmed variant while the
// original stays untouched.
func Example() {
	g := core.NewDirected[string, string](func(m *core.MutableGraph[string, string]) {
		libc := m.AddNode("libc")
		compiler := m.AddNode("compiler")
		app := m.AddNode("app")
		_, _ = m.AddEdge(compiler, libc, "links")
		_, _ = m.AddEdge(app, compiler, "built-with")
		_, _ = m.AddEdge(app, libc, "links")
	})

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())

	// Dropping the compiler removes both of its edges in one call.
	trimmed := g.Mutate(func(m *core.MutableGraph[string, string]) {
		m.RemoveNode(1)
	})
	fmt.Println("trimmed:", trimmed.NodeCount(), trimmed.EdgeCount())
	fmt.Println("original:", g.NodeCount(), g.EdgeCount())

	// Output:
	// nodes: 3 edges: 3
	// trimmed: 2 1
	// original: 3 3
}

// Iterate index/payload pairs in insertion order.
func ExampleGraph_Nodes() {
	g := core.NewUndirected[string, int](func(m *core.MutableGraph[string, int]) {
		m.AddNode("hydrogen")
		m.AddNode("helium")
		m.AddNode("lithium")
	})

	for idx, name := range g.Nodes() {
		fmt.Printf("%d=%s\n", idx, name)
	}

	// Output:
	// 0=hydrogen
	// 1=helium
	// 2=lithium
}

// Undirected edges are visible from both endpoints through the same
// accessors that serve directed graphs.
func ExampleGraph_Neighbors() {
	g := core.NewUndirected[string, float64](func(m *core.MutableGraph[string, float64]) {
		oslo := m.AddNode("Oslo")
		bergen := m.AddNode("Bergen")
		trondheim := m.AddNode("Trondheim")
		_, _ = m.AddEdge(oslo, bergen, 463.0)
		_, _ = m.AddEdge(oslo, trondheim, 391.0)
	})

	fmt.Println(g.Neighbors(0))
	fmt.Println(g.Neighbors(1))

	// Output:
	// [1 2]
	// [0]
}
