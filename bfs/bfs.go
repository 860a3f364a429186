// Package bfs implements breadth-first exploration on core.Graph, used to
// discover connected components.
//
// Components(g, opts...) returns the connected components of the undirected
// closure of g. Seeds are taken in ascending vertex order and neighbors are
// expanded in ascending order, so the component list is ordered by the first
// discovered (smallest) vertex of each component.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and visited flags.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/procmine/core"
)

// explorer carries the option-dependent expansion step.
type explorer struct {
	graph *core.Graph
	opts  BFSOptions
}

func newExplorer(g *core.Graph, opts []Option) *explorer {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &explorer{graph: g, opts: o}
}

func (x *explorer) excluded(id string) bool {
	return x.opts.Exclude != nil && x.opts.Exclude(id)
}

// collect runs one BFS from start, marking seen, and returns the visit order.
func (x *explorer) collect(start string, seen map[string]bool) ([]string, error) {
	queue := []string{start}
	seen[start] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		nbs, err := x.graph.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("bfs: neighbors of %q: %w", u, err)
		}
		for _, v := range nbs {
			if seen[v] || x.excluded(v) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	return queue, nil
}

// Components returns the connected components of g. Every component is
// sorted ascending; components are ordered by their smallest vertex.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	x := newExplorer(g, opts)
	seen := make(map[string]bool)
	var comps [][]string
	for _, v := range g.Vertices() {
		if seen[v] || x.excluded(v) {
			continue
		}
		comp, err := x.collect(v, seen)
		if err != nil {
			return nil, err
		}
		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
