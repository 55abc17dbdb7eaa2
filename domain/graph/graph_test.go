package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AddVertex_Idempotent(t *testing.T) {
	g := New[string]()

	assert.True(t, g.AddVertex("a", "first"))
	assert.False(t, g.AddVertex("a", "second"))

	payload, ok := g.Payload("a")
	require.True(t, ok)
	assert.Equal(t, "first", payload, "re-insertion must keep the original payload")
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddEdge_UndirectedAndOverwrite(t *testing.T) {
	g := New[int]()
	g.AddVertex("a", 1)
	g.AddVertex("b", 2)

	require.NoError(t, g.AddEdge("a", "b", 3.5))

	wAB, err := g.EdgeWeight("a", "b")
	require.NoError(t, err)
	wBA, err := g.EdgeWeight("b", "a")
	require.NoError(t, err)
	assert.Equal(t, wAB, wBA, "both directions must report the same weight")
	assert.Equal(t, 3.5, wAB)

	// Re-adding overwrites the weight in both directions
	require.NoError(t, g.AddEdge("b", "a", 7))
	wAB, err = g.EdgeWeight("a", "b")
	require.NoError(t, err)
	assert.Equal(t, 7.0, wAB)
}

func TestGraph_AddEdge_Errors(t *testing.T) {
	g := New[int]()
	g.AddVertex("a", 1)

	assert.ErrorIs(t, g.AddEdge("a", "missing", 1), ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("missing", "a", 1), ErrVertexNotFound)
	assert.ErrorIs(t, g.AddEdge("a", "a", -1), ErrNegativeWeight)
}

func TestGraph_RemoveVertex_RemovesIncidentEdges(t *testing.T) {
	g := New[int]()
	g.AddVertex("a", 1)
	g.AddVertex("b", 2)
	g.AddVertex("c", 3)
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("b", "c", 1))

	assert.True(t, g.RemoveVertex("b"))
	assert.False(t, g.RemoveVertex("b"))

	assert.False(t, g.HasVertex("b"))
	assert.False(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("c", "b"))
	assert.Empty(t, g.Edges())
}

func TestGraph_RemoveEdge(t *testing.T) {
	g := New[int]()
	g.AddVertex("a", 1)
	g.AddVertex("b", 2)
	require.NoError(t, g.AddEdge("a", "b", 2))

	assert.True(t, g.RemoveEdge("b", "a"))
	assert.False(t, g.HasEdge("a", "b"))
	assert.False(t, g.HasEdge("b", "a"))
	assert.False(t, g.RemoveEdge("a", "b"), "removing an absent edge is a no-op")
}

func TestGraph_Neighbors_SortedByID(t *testing.T) {
	g := New[int]()
	for _, id := range []string{"d", "b", "a", "c"} {
		g.AddVertex(id, 0)
	}
	require.NoError(t, g.AddEdge("a", "d", 1))
	require.NoError(t, g.AddEdge("a", "b", 1))
	require.NoError(t, g.AddEdge("a", "c", 1))

	neighbors, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, neighbors)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, ErrVertexNotFound)
}

func TestGraph_Edges_EachPairOnce(t *testing.T) {
	g := New[int]()
	for _, id := range []string{"a", "b", "c"} {
		g.AddVertex(id, 0)
	}
	require.NoError(t, g.AddEdge("b", "a", 1))
	require.NoError(t, g.AddEdge("c", "b", 2))

	edges := g.Edges()
	assert.Equal(t, []Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "b", To: "c", Weight: 2},
	}, edges)
}

func TestGraph_VertexIDs_Sorted(t *testing.T) {
	g := New[int]()
	for _, id := range []string{"c", "a", "b"} {
		g.AddVertex(id, 0)
	}
	assert.Equal(t, []string{"a", "b", "c"}, g.VertexIDs())
}
