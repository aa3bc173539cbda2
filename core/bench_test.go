package core_test

import (
	"testing"

	"github.com/katalvlaran/gravl/core"
)

const benchNodes = 1 << 10

// buildBenchGraph seeds a binary-heap-shaped DAG of benchNodes nodes.
func buildBenchGraph(b *testing.B) (*core.Graph[int, int], []core.NodeIndex) {
	b.Helper()
	ids := make([]core.NodeIndex, benchNodes)
	g := core.NewDirected[int, int](func(m *core.MutableGraph[int, int]) {
		for i := 0; i < benchNodes; i++ {
			ids[i] = m.AddNode(i)
		}
		for i := 1; i < benchNodes; i++ {
			_, _ = m.AddEdge(ids[i/2], ids[i], i)
		}
	})

	return g, ids
}

func BenchmarkBeginMutation(b *testing.B) {
	g, _ := buildBenchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.BeginMutation()
	}
}

func BenchmarkAddEdge(b *testing.B) {
	g, ids := buildBenchGraph(b)
	m := g.BeginMutation()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.AddEdge(ids[i%benchNodes], ids[(i+1)%benchNodes], i); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g, ids := buildBenchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(ids[i%benchNodes])
	}
}

func BenchmarkGraph_Hash(b *testing.B) {
	g, _ := buildBenchGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Hash(); err != nil {
			b.Fatal(err)
		}
	}
}
