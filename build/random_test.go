package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravl/build"
	"github.com/katalvlaran/gravl/core"
)

func TestRandomSparse_ZeroProbability(t *testing.T) {
	g, err := build.Undirected[int, int](build.RandomSparse[int, int](8, 0, 1, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 8, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestRandomSparse_FullProbability(t *testing.T) {
	undirected, err := build.Undirected[int, int](build.RandomSparse[int, int](6, 1, 1, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 15, undirected.EdgeCount(), "p=1 samples every unordered pair")

	directed, err := build.Directed[int, int](build.RandomSparse[int, int](6, 1, 1, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, 30, directed.EdgeCount(), "p=1 samples every ordered pair")
}

func TestRandomSparse_SeedReproduces(t *testing.T) {
	sample := func() *core.Graph[int, int] {
		g, err := build.Directed[int, int](build.RandomSparse[int, int](16, 0.4, 42, nil, nil))
		require.NoError(t, err)

		return g
	}

	assert.True(t, sample().Equal(sample()), "one seed, one graph")
}

func TestRandomSparse_NoSelfLoops(t *testing.T) {
	g, err := build.Directed[int, int](build.RandomSparse[int, int](10, 0.9, 7, nil, nil))
	require.NoError(t, err)

	for _, idx := range g.EdgeIndices() {
		edge, ok := g.Edge(idx)
		require.True(t, ok)
		assert.NotEqual(t, edge.Source, edge.Target)
	}
}

func TestRandomSparse_EdgeCountWithinBounds(t *testing.T) {
	g, err := build.Undirected[int, int](build.RandomSparse[int, int](12, 0.5, 3, nil, nil))
	require.NoError(t, err)
	assert.LessOrEqual(t, g.EdgeCount(), 66, "cannot exceed the unordered pair count")
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := build.Undirected[int, int](build.RandomSparse[int, int](4, 1.5, 1, nil, nil))
	assert.ErrorIs(t, err, build.ErrInvalidProbability)

	_, err = build.Undirected[int, int](build.RandomSparse[int, int](4, -0.1, 1, nil, nil))
	assert.ErrorIs(t, err, build.ErrInvalidProbability)
}

func TestRandomSparse_TooFewNodes(t *testing.T) {
	_, err := build.Undirected[int, int](build.RandomSparse[int, int](0, 0.5, 1, nil, nil))
	assert.ErrorIs(t, err, build.ErrTooFewNodes)
}
