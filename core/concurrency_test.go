package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gravl/core"
)

// Immutable graphs promise unsynchronized concurrent reads. Run under the
// race detector to validate the promise.
func TestGraph_ConcurrentReaders(t *testing.T) {
	g, ids := buildChain(64)

	const readers = 16
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				for _, id := range ids {
					_ = g.Neighbors(id)
					_ = g.Incident(id, core.Incoming)
					_, _ = g.Node(id)
				}
				_ = g.NodeIndices()
				_, _ = g.Hash()
			}
		}()
	}
	wg.Wait()
}

// Each goroutine runs its own mutation cycle off the same base graph; the
// copies are independent and the base never changes.
func TestGraph_ConcurrentMutationCycles(t *testing.T) {
	g, _ := buildChain(8)

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(n int) {
			defer wg.Done()
			g2 := g.Mutate(func(m *core.MutableGraph[string, int]) {
				m.AddNode(fmt.Sprintf("W%d", n))
			})
			assert.Equal(t, 9, g2.NodeCount())
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 8, g.NodeCount())
	assert.Equal(t, 7, g.EdgeCount())
}
