package dfs

import (
	"fmt"

	"github.com/katalvlaran/procmine/core"
)

// Set is a set of vertex IDs.
type Set map[string]struct{}

// Has reports whether id is in s.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Relations holds the transitive closure of a graph in both directions.
type Relations struct {
	// Pre maps each vertex to every vertex that reaches it by a path of length ≥ 1.
	Pre map[string]Set

	// Post maps each vertex to every vertex it reaches by a path of length ≥ 1.
	Post map[string]Set
}

// Reaches reports whether a path of length ≥ 1 leads from a to b.
func (r *Relations) Reaches(a, b string) bool {
	return r.Post[a].Has(b)
}

// Descendants returns every vertex reachable from id by a path of length ≥ 1.
// id itself is included only if it lies on a cycle.
func Descendants(g *core.Graph, id string) (Set, error) {
	return reach(g, id, false)
}

// Ancestors returns every vertex that reaches id by a path of length ≥ 1.
func Ancestors(g *core.Graph, id string) (Set, error) {
	return reach(g, id, true)
}

// reach collects the vertices visited from the neighbors of id,
// which excludes id unless a cycle leads back to it.
func reach(g *core.Graph, id string, reverse bool) (Set, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(id) {
		return nil, ErrStartVertexNotFound
	}
	var first []string
	var err error
	if reverse {
		first, err = g.Predecessors(id)
	} else {
		first, err = g.Successors(id)
	}
	if err != nil {
		return nil, fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}

	out := make(Set)
	var opts []Option
	if reverse {
		opts = append(opts, WithReverse())
	}
	opts = append(opts, WithFilterNeighbor(func(n string) bool {
		_, seen := out[n]
		return !seen
	}), WithOnVisit(func(v string) error {
		out[v] = struct{}{}
		return nil
	}))
	for _, s := range first {
		if out.Has(s) {
			continue
		}
		if _, err = DFS(g, s, opts...); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// TransitiveRelations computes Pre and Post for every vertex of g.
// Complexity: O(V·(V+E)).
func TransitiveRelations(g *core.Graph) (*Relations, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	rel := &Relations{
		Pre:  make(map[string]Set, len(vertices)),
		Post: make(map[string]Set, len(vertices)),
	}
	for _, v := range vertices {
		post, err := Descendants(g, v)
		if err != nil {
			return nil, err
		}
		pre, err := Ancestors(g, v)
		if err != nil {
			return nil, err
		}
		rel.Post[v], rel.Pre[v] = post, pre
	}

	return rel, nil
}
