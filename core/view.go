package core

// FilterEdges returns a new Graph holding every vertex of g and only the
// edges for which keep returns true, with their weights. g is not mutated.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func (g *Graph) FilterEdges(keep func(e Edge) bool) *Graph {
	out := NewGraph()

	g.mu.RLock()
	defer g.mu.RUnlock()
	for id := range g.vertices {
		out.addVertexLocked(id)
	}
	for from, targets := range g.out {
		for to, w := range targets {
			if !keep(Edge{From: from, To: to, Weight: w}) {
				continue
			}
			out.out[from][to] = w
			out.in[to][from] = w
			out.edgeCount++
		}
	}

	return out
}
