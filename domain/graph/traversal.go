package graph

import (
	"container/heap"
	"math"
)

// FindPath returns a minimum-hop path between two vertices as a vertex ID
// sequence. FindPath(A, A) is [A]. Unknown endpoints return
// ErrVertexNotFound; unreachable endpoints return ErrNoPath. Neighbors are
// expanded in lexicographic order, so among equally short paths the result
// is deterministic.
func (g *Graph[T]) FindPath(start, end string) ([]string, error) {
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, ErrVertexNotFound
	}
	if start == end {
		return []string{start}, nil
	}

	parent := make(map[string]string)
	visited := map[string]bool{start: true}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == end {
			break
		}
		neighbors, _ := g.Neighbors(current)
		for _, next := range neighbors {
			if !visited[next] {
				visited[next] = true
				parent[next] = current
				queue = append(queue, next)
			}
		}
	}

	if !visited[end] {
		return nil, ErrNoPath
	}
	return rebuildPath(parent, start, end), nil
}

// FindPathByWeight returns the minimum-total-weight path between two
// vertices using Dijkstra's algorithm with a min-priority queue and lazy
// decrease-key. Weight ties are broken towards the lexicographically
// smaller predecessor so the result is deterministic. Error discrimination
// matches FindPath.
func (g *Graph[T]) FindPathByWeight(start, end string) ([]string, error) {
	if !g.HasVertex(start) || !g.HasVertex(end) {
		return nil, ErrVertexNotFound
	}
	if start == end {
		return []string{start}, nil
	}

	dist := make(map[string]float64, len(g.payloads))
	for id := range g.payloads {
		dist[id] = math.Inf(1)
	}
	dist[start] = 0

	parent := make(map[string]string)
	done := make(map[string]bool)
	pq := &vertexQueue{{id: start, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(vertexItem)
		if done[item.id] || item.dist > dist[item.id] {
			continue // finalized or stale entry
		}
		done[item.id] = true
		neighbors, _ := g.Neighbors(item.id)
		for _, next := range neighbors {
			candidate := item.dist + g.adjacency[item.id][next]
			switch {
			case candidate < dist[next]:
				dist[next] = candidate
				parent[next] = item.id
				heap.Push(pq, vertexItem{id: next, dist: candidate})
			case candidate == dist[next] && !done[next] && item.id < parent[next]:
				// Retargeting only pre-final vertices keeps the parent
				// chain acyclic when zero-weight edges produce equal
				// distances on both sides of an edge.
				parent[next] = item.id
			}
		}
	}

	if math.IsInf(dist[end], 1) {
		return nil, ErrNoPath
	}
	return rebuildPath(parent, start, end), nil
}

// Distance returns the total weight along the minimum-weight path, computed
// by summing the edge weights of consecutive path vertices. No route is
// reported as ErrNoPath, distinguishable from unknown endpoints
// (ErrVertexNotFound); there is no overloaded numeric sentinel.
func (g *Graph[T]) Distance(from, to string) (float64, error) {
	path, err := g.FindPathByWeight(from, to)
	if err != nil {
		return 0, err
	}

	var total float64
	for i := 0; i+1 < len(path); i++ {
		total += g.adjacency[path[i]][path[i+1]]
	}
	return total, nil
}

// IsConnected reports whether every vertex is reachable from every other.
// An empty graph (and a single-vertex graph) is trivially connected.
func (g *Graph[T]) IsConnected() bool {
	if len(g.payloads) == 0 {
		return true
	}

	start := ""
	for id := range g.payloads {
		if start == "" || id < start {
			start = id
		}
	}

	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for next := range g.adjacency[current] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return len(visited) == len(g.payloads)
}

// rebuildPath walks the parent chain from end back to start
func rebuildPath(parent map[string]string, start, end string) []string {
	var path []string
	for v := end; v != start; v = parent[v] {
		path = append(path, v)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// vertexItem is a priority queue entry keyed by tentative distance
type vertexItem struct {
	id   string
	dist float64
}

type vertexQueue []vertexItem

func (q vertexQueue) Len() int { return len(q) }

func (q vertexQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].id < q[j].id
}

func (q vertexQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *vertexQueue) Push(x any) {
	*q = append(*q, x.(vertexItem))
}

func (q *vertexQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
