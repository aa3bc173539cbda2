package build

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gravl/core"
)

const minRandomNodes = 1

// RandomSparse returns a constructor sampling an Erdos-Renyi graph
// G(n, p): every candidate pair becomes an edge independently with
// probability p. Directed graphs draw over ordered pairs, undirected
// over unordered ones; self-loops are never sampled. The seed fixes the
// draw sequence, so equal parameters reproduce the identical graph.
func RandomSparse[N, E any](n int, p float64, seed int64, node NodeFn[N], edge EdgeFn[E]) Constructor[N, E] {
	return func(m *core.MutableGraph[N, E]) error {
		if n < minRandomNodes {
			return fmt.Errorf("%w: RandomSparse needs n >= %d, got %d", ErrTooFewNodes, minRandomNodes, n)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: RandomSparse got p=%g", ErrInvalidProbability, p)
		}

		ids := addNodes(m, n, node)
		edgeOf := edgeFnOrZero(edge)
		rng := rand.New(rand.NewSource(seed))

		// Fixed pair order plus a fixed seed make the Bernoulli draws,
		// and therefore the sampled edge set, fully deterministic.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if !m.Directed() && j < i {
					continue
				}
				if rng.Float64() >= p {
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
