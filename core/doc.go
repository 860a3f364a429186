// Package core defines the weighted directed Graph that backs every
// directly-follows graph, together with thread-safe primitives for building,
// querying and filtering it.
//
// Vertices are opaque string identifiers. Between any ordered pair of vertices
// there is at most one edge; adding the same edge again accumulates its weight,
// which is how occurrence counts are aggregated. Self-loops are allowed since
// an activity may directly follow itself.
//
// All methods take a sync.RWMutex internally, so concurrent readers never
// block each other and a Graph may be handed to sibling goroutines read-only.
//
// Determinism:
//
//   - Vertices(), Successors(), Predecessors() and NeighborIDs() are sorted.
//   - Edges() is sorted by (From, To).
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrBadWeight      - non-positive weight passed to AddEdge.
package core
