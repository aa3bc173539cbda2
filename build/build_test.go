package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gravl/algorithms"
	"github.com/katalvlaran/gravl/build"
	"github.com/katalvlaran/gravl/core"
)

func TestDirected_EmptyChain(t *testing.T) {
	g, err := build.Directed[string, int]()
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestUndirected_EmptyChain(t *testing.T) {
	g, err := build.Undirected[string, int]()
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.Zero(t, g.NodeCount())
}

func TestBuild_NilConstructor(t *testing.T) {
	g, err := build.Directed[string, int](
		build.Path[string, int](2, nil, nil),
		nil,
	)
	assert.ErrorIs(t, err, build.ErrConstructFailed)
	assert.Nil(t, g)
}

func TestBuild_FirstErrorAborts(t *testing.T) {
	g, err := build.Directed[string, int](
		build.Path[string, int](1, nil, nil), // below the minimum
		build.Cycle[string, int](3, nil, nil),
	)
	assert.ErrorIs(t, err, build.ErrTooFewNodes)
	assert.Nil(t, g)
}

func TestBuild_DisjointUnion(t *testing.T) {
	g, err := build.Undirected[string, int](
		build.Path[string, int](2, nil, nil),
		build.Path[string, int](2, nil, nil),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	components, err := algorithms.ConnectedComponents[string, int](g)
	require.NoError(t, err)
	assert.Len(t, components, 2, "composed shapes stay disconnected")
}

func TestBuild_OrdinalsRestartPerConstructor(t *testing.T) {
	g, err := build.Undirected[string, int](
		build.Cycle[string, int](3, build.Labels("ring-"), nil),
		build.Path[string, int](2, build.Labels("tail-"), nil),
	)
	require.NoError(t, err)
	require.Equal(t, 5, g.NodeCount())

	first, _ := g.Node(0)
	assert.Equal(t, "ring-0", first)
	tail, _ := g.Node(3)
	assert.Equal(t, "tail-0", tail, "ordinals restart, indices keep growing")
}

func TestBuild_Deterministic(t *testing.T) {
	fixture := func() *core.Graph[string, int] {
		g, err := build.Directed[string, int](
			build.Star[string, int](4, build.Labels("n"), nil),
			build.Cycle[string, int](3, build.Labels("c"), nil),
		)
		require.NoError(t, err)

		return g
	}

	assert.True(t, fixture().Equal(fixture()), "equal chains build equal graphs")
}

func TestConstructor_InsideMutate(t *testing.T) {
	// Constructors are plain functions over the mutable view, so shapes
	// can be appended to an existing graph.
	g := core.NewUndirected[string, int](func(m *core.MutableGraph[string, int]) {
		m.AddNode("seed")
	})

	var consErr error
	grown := g.Mutate(func(m *core.MutableGraph[string, int]) {
		consErr = build.Cycle[string, int](3, build.Labels("c"), nil)(m)
	})
	require.NoError(t, consErr)

	assert.Equal(t, 1, g.NodeCount(), "source graph stays untouched")
	assert.Equal(t, 4, grown.NodeCount())
	assert.Equal(t, 3, grown.EdgeCount())
}
