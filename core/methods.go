// File: methods.go
// Role: vertex and edge lifecycle plus adjacency queries.
// Determinism:
//   - Every slice-returning query is sorted.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"sort"
)

// AddVertex inserts id if absent. Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id and its adjacency buckets; caller holds mu.
func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.out[id] = make(map[string]int64)
	g.in[id] = make(map[string]int64)
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge adds weight to the edge from→to, creating the edge and both
// endpoints on first use.
//
// Steps:
//  1. Validate IDs and weight.
//  2. Ensure endpoints exist.
//  3. Accumulate out[from][to] and its mirror in[to][from].
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if weight <= 0 {
		return ErrBadWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if _, ok := g.out[from][to]; !ok {
		g.edgeCount++
	}
	g.out[from][to] += weight
	g.in[to][from] += weight

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Unknown vertices simply yield false.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Weight returns the accumulated weight of from→to, or 0 if the edge is absent.
func (g *Graph) Weight(from, to string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.out[from][to]
}

// Successors returns the sorted targets of edges leaving id.
// Complexity: O(d log d) for out-degree d.
func (g *Graph) Successors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.out[id]), nil
}

// Predecessors returns the sorted sources of edges entering id.
func (g *Graph) Predecessors(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return sortedKeys(g.in[id]), nil
}

// NeighborIDs returns the sorted vertices joined to id by an edge in either
// direction, which is adjacency in the undirected closure of g.
// A self-loop does not make id its own neighbor.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	set := make(map[string]int64, len(g.out[id])+len(g.in[id]))
	for to := range g.out[id] {
		if to != id {
			set[to] = 0
		}
	}
	for from := range g.in[id] {
		if from != id {
			set[from] = 0
		}
	}

	return sortedKeys(set), nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns a snapshot of all edges sorted by (From, To).
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := make([]Edge, 0, g.edgeCount)
	for from, targets := range g.out {
		for to, w := range targets {
			edges = append(edges, Edge{From: from, To: to, Weight: w})
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

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
