package dfs

import (
	"sort"

	"github.com/katalvlaran/procmine/core"
)

// tarjan holds the bookkeeping of one Tarjan run.
type tarjan struct {
	graph   *core.Graph
	index   map[string]int
	low     map[string]int
	onStack map[string]bool
	stack   []string
	next    int
	comps   [][]string
}

// StronglyConnected partitions the vertices of g into strongly connected
// components using Tarjan's algorithm. Roots are tried in ascending ID order
// and successors are sorted, so the output is deterministic: components come
// in reverse topological order of the condensation, each sorted ascending.
//
// Complexity: O(V + E) time, O(V) memory.
func StronglyConnected(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	t := &tarjan{
		graph:   g,
		index:   make(map[string]int, len(vertices)),
		low:     make(map[string]int, len(vertices)),
		onStack: make(map[string]bool, len(vertices)),
	}
	for _, v := range vertices {
		if _, seen := t.index[v]; !seen {
			if err := t.strongConnect(v); err != nil {
				return nil, err
			}
		}
	}

	return t.comps, nil
}

func (t *tarjan) strongConnect(v string) error {
	t.index[v] = t.next
	t.low[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	succ, err := t.graph.Successors(v)
	if err != nil {
		return err
	}
	for _, w := range succ {
		if _, seen := t.index[w]; !seen {
			if err = t.strongConnect(w); err != nil {
				return err
			}
			t.low[v] = min(t.low[v], t.low[w])
		} else if t.onStack[w] {
			t.low[v] = min(t.low[v], t.index[w])
		}
	}

	// v is a root: pop its component
	if t.low[v] == t.index[v] {
		var comp []string
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		sort.Strings(comp)
		t.comps = append(t.comps, comp)
	}

	return nil
}
