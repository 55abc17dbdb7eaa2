package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDiamond(t *testing.T) *Graph[int] {
	t.Helper()
	g := New[int]()
	for _, id := range []string{"a", "b", "c", "d"} {
		g.AddVertex(id, 0)
	}
	// Two routes from a to d: a-b-d (weight 10) and a-c-d (weight 4),
	// both two hops.
	require.NoError(t, g.AddEdge("a", "b", 5))
	require.NoError(t, g.AddEdge("b", "d", 5))
	require.NoError(t, g.AddEdge("a", "c", 1))
	require.NoError(t, g.AddEdge("c", "d", 3))
	return g
}

func TestFindPath_FewestHops(t *testing.T) {
	g := buildDiamond(t)
	g.AddVertex("e", 0)
	require.NoError(t, g.AddEdge("b", "e", 1))
	require.NoError(t, g.AddEdge("e", "d", 1))

	// a-b-d and a-c-d are two hops; a-b-e-d is three. Between the two-hop
	// candidates the lexicographically smaller intermediate wins.
	path, err := g.FindPath("a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, path)
}

func TestFindPath_SameVertex(t *testing.T) {
	g := buildDiamond(t)
	path, err := g.FindPath("a", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, path)
}

func TestFindPath_Errors(t *testing.T) {
	g := buildDiamond(t)
	g.AddVertex("island", 0)

	_, err := g.FindPath("a", "missing")
	assert.ErrorIs(t, err, ErrVertexNotFound)

	_, err = g.FindPath("a", "island")
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestFindPathByWeight_PrefersLightRoute(t *testing.T) {
	g := buildDiamond(t)

	// a-c-d weighs 4, a-b-d weighs 10.
	path, err := g.FindPathByWeight("a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d"}, path)
}

func TestFindPathByWeight_LongerButLighter(t *testing.T) {
	g := New[int]()
	for _, id := range []string{"a", "b", "c", "d"} {
		g.AddVertex(id, 0)
	}
	require.NoError(t, g.AddEdge("a", "d", 100))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 1))
	require.NoError(t, g.AddEdge("c", "d", 1))

	path, err := g.FindPathByWeight("a", "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)
}

func TestFindPathByWeight_TieBreaksTowardsLowerIDs(t *testing.T) {
	g := New[int]()
	for _, id := range []string{"a", "b", "c", "z"} {
		g.AddVertex(id, 0)
	}
	// a-b-z and a-c-z both weigh 2.
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "z", 1))
	require.NoError(t, g.AddEdge("a", "c", 1))
	require.NoError(t, g.AddEdge("c", "z", 1))

	path, err := g.FindPathByWeight("a", "z")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "z"}, path)
}

func TestFindPathByWeight_ZeroWeightEdges(t *testing.T) {
	g := New[int]()
	for _, id := range []string{"a", "b", "s"} {
		g.AddVertex(id, 0)
	}
	// A fully connected triangle of zero-weight edges gives every pair
	// of vertices the same distance, so predecessor ties appear on both
	// ends of each edge.
	require.NoError(t, g.AddEdge("s", "a", 0))
	require.NoError(t, g.AddEdge("s", "b", 0))
	require.NoError(t, g.AddEdge("a", "b", 0))

	path, err := g.FindPathByWeight("s", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "a"}, path)

	// "a" is finalized before "b", so it stays b's predecessor.
	path, err = g.FindPathByWeight("s", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "a", "b"}, path)

	distance, err := g.Distance("s", "b")
	require.NoError(t, err)
	assert.Zero(t, distance)
}

func TestFindPathByWeight_Errors(t *testing.T) {
	g := buildDiamond(t)
	g.AddVertex("island", 0)

	_, err := g.FindPathByWeight("missing", "a")
	assert.ErrorIs(t, err, ErrVertexNotFound)

	_, err = g.FindPathByWeight("island", "a")
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestDistance_SumsPathWeights(t *testing.T) {
	g := buildDiamond(t)

	distance, err := g.Distance("a", "d")
	require.NoError(t, err)
	assert.Equal(t, 4.0, distance)

	distance, err = g.Distance("a", "a")
	require.NoError(t, err)
	assert.Zero(t, distance)
}

func TestDistance_ErrorDiscrimination(t *testing.T) {
	g := buildDiamond(t)
	g.AddVertex("island", 0)

	_, err := g.Distance("a", "island")
	assert.ErrorIs(t, err, ErrNoPath)

	_, err = g.Distance("a", "missing")
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestIsConnected(t *testing.T) {
	g := New[int]()
	assert.True(t, g.IsConnected(), "empty graph is trivially connected")

	g.AddVertex("a", 0)
	assert.True(t, g.IsConnected(), "single vertex is connected")

	g.AddVertex("b", 0)
	assert.False(t, g.IsConnected())

	require.NoError(t, g.AddEdge("a", "b", 1))
	assert.True(t, g.IsConnected())

	g.RemoveEdge("a", "b")
	assert.False(t, g.IsConnected())
}
