// File: types.go
// Role: Graph, Edge, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards vertices, out, in and edgeCount.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a zero or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")
)

// Edge is a read-only snapshot of one directed edge.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the accumulated weight of every AddEdge(From, To, w) call.
	Weight int64
}

// Graph is a weighted directed graph with at most one edge per ordered pair.
type Graph struct {
	mu sync.RWMutex

	vertices  map[string]struct{}
	out       map[string]map[string]int64 // out[from][to] = weight
	in        map[string]map[string]int64 // in[to][from] = weight, mirror of out
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make(map[string]struct{}),
		out:      make(map[string]map[string]int64),
		in:       make(map[string]map[string]int64),
	}
}
