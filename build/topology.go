package build

import (
	"fmt"

	"github.com/katalvlaran/gravl/core"
)

// Constructor minima.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minPartition     = 1
	minGridDim       = 1
)

// Path returns a constructor for the simple path P_n: n nodes chained by
// n-1 edges emitted in ascending ordinal order. On a directed graph the
// chain runs from ordinal 0 toward ordinal n-1, so the result is acyclic.
func Path[N, E any](n int, node NodeFn[N], edge EdgeFn[E]) Constructor[N, E] {
	return func(m *core.MutableGraph[N, E]) error {
		if n < minPathNodes {
			return fmt.Errorf("%w: Path needs n >= %d, got %d", ErrTooFewNodes, minPathNodes, n)
		}

		ids := addNodes(m, n, node)
		edgeOf := edgeFnOrZero(edge)
		for i := 1; i < n; i++ {
			if err := connect(m, ids[i-1], ids[i], edgeOf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a constructor for the cycle C_n: n nodes closed into a
// ring by edges ordinal i to ordinal (i+1) mod n. On a directed graph the
// result is a one-way ring, which is a single strongly connected
// component.
func Cycle[N, E any](n int, node NodeFn[N], edge EdgeFn[E]) Constructor[N, E] {
	return func(m *core.MutableGraph[N, E]) error {
		if n < minCycleNodes {
			return fmt.Errorf("%w: Cycle needs n >= %d, got %d", ErrTooFewNodes, minCycleNodes, n)
		}

		ids := addNodes(m, n, node)
		edgeOf := edgeFnOrZero(edge)
		for i := 0; i < n; i++ {
			if err := connect(m, ids[i], ids[(i+1)%n], edgeOf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a constructor for the star S_n: ordinal 0 is the hub,
// connected to each of the n-1 leaves in ordinal order. On a directed
// graph every edge points from the hub outward.
func Star[N, E any](n int, node NodeFn[N], edge EdgeFn[E]) Constructor[N, E] {
	return func(m *core.MutableGraph[N, E]) error {
		if n < minStarNodes {
			return fmt.Errorf("%w: Star needs n >= %d, got %d", ErrTooFewNodes, minStarNodes, n)
		}

		ids := addNodes(m, n, node)
		edgeOf := edgeFnOrZero(edge)
		for i := 1; i < n; i++ {
			if err := connect(m, ids[0], ids[i], edgeOf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a constructor for the complete graph K_n: every
// unordered node pair on undirected graphs, every ordered pair on
// directed graphs. Pairs are emitted with the lower ordinal outermost.
func Complete[N, E any](n int, node NodeFn[N], edge EdgeFn[E]) Constructor[N, E] {
	return func(m *core.MutableGraph[N, E]) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%w: Complete needs n >= %d, got %d", ErrTooFewNodes, minCompleteNodes, n)
		}

		ids := addNodes(m, n, node)
		edgeOf := edgeFnOrZero(edge)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !m.Directed() && j < i {
					continue
				}
				if err := connect(m, ids[i], ids[j], edgeOf); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a constructor for K_{left,right}: the left
// partition takes ordinals 0..left-1, the right partition the following
// right ordinals, and every cross pair is connected left to right.
func CompleteBipartite[N, E any](left, right int, node NodeFn[N], edge EdgeFn[E]) Constructor[N, E] {
	return func(m *core.MutableGraph[N, E]) error {
		if left < minPartition || right < minPartition {
			return fmt.Errorf("%w: CompleteBipartite needs partitions >= %d, got %d and %d",
				ErrTooFewNodes, minPartition, left, right)
		}

		ids := addNodes(m, left+right, node)
		edgeOf := edgeFnOrZero(edge)
		for l := 0; l < left; l++ {
			for r := left; r < left+right; r++ {
				if err := connect(m, ids[l], ids[r], edgeOf); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid returns a constructor for a rows x cols orthogonal grid with
// row-major ordinals. Each cell connects to its right and bottom
// neighbor; directed graphs additionally get the mirror edges, keeping
// the neighborhood symmetric in both orientations.
func Grid[N, E any](rows, cols int, node NodeFn[N], edge EdgeFn[E]) Constructor[N, E] {
	return func(m *core.MutableGraph[N, E]) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%w: Grid needs dimensions >= %d, got %dx%d",
				ErrTooFewNodes, minGridDim, rows, cols)
		}

		ids := addNodes(m, rows*cols, node)
		edgeOf := edgeFnOrZero(edge)
		mirror := m.Directed()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err := connectMirror(m, u, ids[r*cols+c+1], edgeOf, mirror); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connectMirror(m, u, ids[(r+1)*cols+c], edgeOf, mirror); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// addNodes allocates n nodes with payloads from node, returning their
// indices in ordinal order.
func addNodes[N, E any](m *core.MutableGraph[N, E], n int, node NodeFn[N]) []core.NodeIndex {
	payload := nodeFnOrZero(node)
	ids := make([]core.NodeIndex, n)
	for i := range ids {
		ids[i] = m.AddNode(payload(i))
	}

	return ids
}

// connect adds one edge carrying its payload; endpoint failures surface
// as ErrConstructFailed.
func connect[N, E any](m *core.MutableGraph[N, E], u, v core.NodeIndex, edge EdgeFn[E]) error {
	if _, err := m.AddEdge(u, v, edge(u, v)); err != nil {
		return fmt.Errorf("%w: %v", ErrConstructFailed, err)
	}

	return nil
}

// connectMirror adds u-v and, when mirror is set, the reverse edge too.
func connectMirror[N, E any](m *core.MutableGraph[N, E], u, v core.NodeIndex, edge EdgeFn[E], mirror bool) error {
	if err := connect(m, u, v, edge); err != nil {
		return err
	}
	if mirror {
		return connect(m, v, u, edge)
	}

	return nil
}
