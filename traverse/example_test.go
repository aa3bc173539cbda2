package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/gravl/core"
	"github.com/katalvlaran/gravl/traverse"
)

// Walk a cyclic dependency graph and report the edge that closes the
// cycle.
func ExampleDFS() {
	g := core.NewDirected[string, int](func(m *core.MutableGraph[string, int]) {
		a := m.AddNode("auth")
		b := m.AddNode("billing")
		c := m.AddNode("catalog")
		_, _ = m.AddEdge(a, b, 0)
		_, _ = m.AddEdge(b, c, 0)
		_, _ = m.AddEdge(c, a, 0)
	})

	_ = traverse.DFS(g, func(ev traverse.Event) traverse.Control {
		switch ev.Kind {
		case traverse.DiscoverNode:
			name, _ := g.Node(ev.Node)
			fmt.Println("discover", name)
		case traverse.BackEdge:
			fmt.Printf("cycle closed by edge %d to %d\n", ev.Source, ev.Target)
		}

		return traverse.Continue
	}, nil)

	// Output:
	// discover auth
	// discover billing
	// discover catalog
	// cycle closed by edge 2 to 0
}

// Prune skips a whole subtree without stopping the rest of the walk.
func ExampleDFS_prune() {
	g := core.NewDirected[string, int](func(m *core.MutableGraph[string, int]) {
		src := m.AddNode("src")
		vendor := m.AddNode("vendor")
		pkg := m.AddNode("pkg")
		dep := m.AddNode("dep")
		_, _ = m.AddEdge(src, vendor, 0)
		_, _ = m.AddEdge(src, pkg, 0)
		_, _ = m.AddEdge(vendor, dep, 0)
	})

	_ = traverse.DFS(g, func(ev traverse.Event) traverse.Control {
		if ev.Kind != traverse.DiscoverNode {
			return traverse.Continue
		}
		name, _ := g.Node(ev.Node)
		if name == "vendor" {
			return traverse.Prune
		}
		fmt.Println(name)

		return traverse.Continue
	}, []core.NodeIndex{0})

	// Output:
	// src
	// pkg
}

// The same graph in both traversal orders.
func ExampleNodes() {
	g := core.NewDirected[string, int](func(m *core.MutableGraph[string, int]) {
		root := m.AddNode("root")
		left := m.AddNode("left")
		right := m.AddNode("right")
		leaf := m.AddNode("leaf")
		_, _ = m.AddEdge(root, left, 0)
		_, _ = m.AddEdge(root, right, 0)
		_, _ = m.AddEdge(left, leaf, 0)
	})

	dfsOrder, _ := traverse.Nodes(g, traverse.DepthFirst, nil)
	bfsOrder, _ := traverse.Nodes(g, traverse.BreadthFirst, nil)
	fmt.Println("dfs:", dfsOrder)
	fmt.Println("bfs:", bfsOrder)

	// Output:
	// dfs: [0 1 3 2]
	// bfs: [0 1 2 3]
}
