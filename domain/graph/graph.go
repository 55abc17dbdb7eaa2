// Package graph provides a generic weighted undirected graph with
// deterministic traversal.
//
// Vertices carry an opaque string ID plus a caller-supplied payload, so
// specializations need no runtime type inspection. Undirected semantics are
// kept by construction: the adjacency index stores both directions of every
// edge and they can never diverge. All neighbor iteration is in lexicographic
// ID order, which makes path tie-breaking deterministic: among equally good
// paths the one through lower vertex IDs wins.
package graph

import (
	"errors"
	"sort"
)

// Sentinel errors let callers distinguish "bad input" from "no route".
var (
	ErrVertexNotFound = errors.New("graph: vertex not found")
	ErrEdgeNotFound   = errors.New("graph: edge not found")
	ErrNoPath         = errors.New("graph: no path between vertices")
	ErrNegativeWeight = errors.New("graph: edge weight cannot be negative")
)

// Edge is an undirected connection reported with From < To.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Graph is a weighted undirected graph over payloads of type T.
// Not safe for concurrent use; the system runs it from a single control flow.
type Graph[T any] struct {
	payloads  map[string]T
	adjacency map[string]map[string]float64
}

// New creates an empty graph
func New[T any]() *Graph[T] {
	return &Graph[T]{
		payloads:  make(map[string]T),
		adjacency: make(map[string]map[string]float64),
	}
}

// AddVertex inserts a vertex. Re-inserting an existing ID is a no-op that
// keeps the original payload; the return value reports whether the vertex
// was actually added.
func (g *Graph[T]) AddVertex(id string, payload T) bool {
	if _, exists := g.payloads[id]; exists {
		return false
	}
	g.payloads[id] = payload
	g.adjacency[id] = make(map[string]float64)
	return true
}

// HasVertex reports whether the vertex exists
func (g *Graph[T]) HasVertex(id string) bool {
	_, exists := g.payloads[id]
	return exists
}

// Payload returns the payload stored at the vertex
func (g *Graph[T]) Payload(id string) (T, bool) {
	payload, exists := g.payloads[id]
	return payload, exists
}

// VertexCount returns the number of vertices
func (g *Graph[T]) VertexCount() int {
	return len(g.payloads)
}

// VertexIDs returns all vertex IDs in lexicographic order
func (g *Graph[T]) VertexIDs() []string {
	ids := make([]string, 0, len(g.payloads))
	for id := range g.payloads {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RemoveVertex deletes the vertex and every edge incident to it in either
// direction. Removing an absent vertex is a no-op; the return value reports
// whether anything was removed.
func (g *Graph[T]) RemoveVertex(id string) bool {
	if _, exists := g.payloads[id]; !exists {
		return false
	}
	for neighbor := range g.adjacency[id] {
		delete(g.adjacency[neighbor], id)
	}
	delete(g.adjacency, id)
	delete(g.payloads, id)
	return true
}

// AddEdge connects two existing vertices with the given non-negative weight.
// Both directed entries are inserted together. Unknown endpoints surface as
// ErrVertexNotFound rather than being silently ignored. Re-adding an
// existing edge overwrites its weight.
func (g *Graph[T]) AddEdge(from, to string, weight float64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return ErrVertexNotFound
	}
	g.adjacency[from][to] = weight
	g.adjacency[to][from] = weight
	return nil
}

// RemoveEdge deletes the unordered pair; a missing edge is a no-op and the
// return value reports whether an edge was removed.
func (g *Graph[T]) RemoveEdge(from, to string) bool {
	adj, ok := g.adjacency[from]
	if !ok {
		return false
	}
	if _, ok := adj[to]; !ok {
		return false
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	return true
}

// EdgeWeight returns the weight of the edge between two vertices
func (g *Graph[T]) EdgeWeight(from, to string) (float64, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return 0, ErrVertexNotFound
	}
	weight, ok := g.adjacency[from][to]
	if !ok {
		return 0, ErrEdgeNotFound
	}
	return weight, nil
}

// HasEdge reports whether the two vertices are directly connected
func (g *Graph[T]) HasEdge(from, to string) bool {
	_, ok := g.adjacency[from][to]
	return ok
}

// Neighbors returns the IDs adjacent to the vertex in lexicographic order
func (g *Graph[T]) Neighbors(id string) ([]string, error) {
	adj, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	neighbors := make([]string, 0, len(adj))
	for neighbor := range adj {
		neighbors = append(neighbors, neighbor)
	}
	sort.Strings(neighbors)
	return neighbors, nil
}

// Edges returns every undirected edge exactly once, ordered by (From, To)
// with From < To.
func (g *Graph[T]) Edges() []Edge {
	var edges []Edge
	for from, adj := range g.adjacency {
		for to, weight := range adj {
			if from < to {
				edges = append(edges, Edge{From: from, To: to, Weight: weight})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}
