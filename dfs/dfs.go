// Package dfs implements single-source depth-first search on
// core.Graph, plus the reachability analyses built on it: transitive
// relations and strongly connected components.
//
// Key features:
//   - DFS(g, startID, opts...): post-order traversal from a single root
//   - WithReverse: walk predecessors instead of successors
//   - OnVisit (pre-order) hook with error abort; FilterNeighbor pruning
//   - Neighbors are visited in ascending ID order, so results are deterministic
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/procmine/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on graph g starting from startID.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify startID
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Visited: make(map[string]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse
	if err := walker.traverse(startID); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits vertex id and recurses into unvisited neighbors.
func (w *dfsWalker) traverse(id string) error {
	w.res.Visited[id] = true

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	nbs, err := w.next(id)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nid := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			continue
		}
		if !w.res.Visited[nid] {
			if err = w.traverse(nid); err != nil {
				return err
			}
		}
	}

	w.res.Order = append(w.res.Order, id)

	return nil
}

// next returns the sorted neighbors of id in the configured direction.
func (w *dfsWalker) next(id string) ([]string, error) {
	if w.opts.Reverse {
		return w.graph.Predecessors(id)
	}

	return w.graph.Successors(id)
}
