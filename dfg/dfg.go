package dfg

import (
	"maps"
	"sort"

	"github.com/katalvlaran/procmine/core"
	"github.com/katalvlaran/procmine/eventlog"
)

// DFG is a directly-follows graph with start and end activity counts.
type DFG struct {
	graph *core.Graph
	start map[string]int
	end   map[string]int
}

// Build derives the directly-follows graph of log.
// An empty log, or one holding only empty traces, yields an empty graph.
func Build(log *eventlog.VariantLog) *DFG {
	d := &DFG{
		graph: core.NewGraph(),
		start: make(map[string]int),
		end:   make(map[string]int),
	}
	if log == nil {
		return d
	}
	for _, a := range log.Alphabet() {
		_ = d.graph.AddVertex(a) // eventlog rejects empty activities
	}
	for _, v := range log.Variants() {
		n := len(v.Trace)
		if n == 0 {
			continue
		}
		d.start[v.Trace[0]] += v.Count
		d.end[v.Trace[n-1]] += v.Count
		for i := 0; i+1 < n; i++ {
			_ = d.graph.AddEdge(v.Trace[i], v.Trace[i+1], int64(v.Count))
		}
	}

	return d
}

// FilterNoise returns a copy of d without infrequent edges. An edge a→b is kept
// only if its weight exceeds threshold times the largest outgoing frequency of
// a, where the end count of a also counts as an outgoing frequency. Vertices
// and start/end counts are kept unchanged. A threshold of 0 keeps every edge.
func (d *DFG) FilterNoise(threshold float64) *DFG {
	maxOut := make(map[string]int64, len(d.end))
	for a, c := range d.end {
		maxOut[a] = int64(c)
	}
	for _, e := range d.graph.Edges() {
		maxOut[e.From] = max(maxOut[e.From], e.Weight)
	}

	return &DFG{
		graph: d.graph.FilterEdges(func(e core.Edge) bool {
			return float64(e.Weight) > threshold*float64(maxOut[e.From])
		}),
		start: maps.Clone(d.start),
		end:   maps.Clone(d.end),
	}
}

// Graph exposes the underlying weighted graph. Callers must treat it as read-only.
func (d *DFG) Graph() *core.Graph { return d.graph }

// Activities returns the sorted vertex set.
func (d *DFG) Activities() []string { return d.graph.Vertices() }

// HasEdge reports whether b directly follows a somewhere in the log.
func (d *DFG) HasEdge(a, b string) bool { return d.graph.HasEdge(a, b) }

// Weight returns how often b directly follows a.
func (d *DFG) Weight(a, b string) int64 { return d.graph.Weight(a, b) }

// Edges returns all edges sorted by (From, To).
func (d *DFG) Edges() []core.Edge { return d.graph.Edges() }

// EdgeCount returns the number of distinct edges.
func (d *DFG) EdgeCount() int { return d.graph.EdgeCount() }

// Successors returns the sorted activities directly following a.
func (d *DFG) Successors(a string) []string {
	s, _ := d.graph.Successors(a)
	return s
}

// Predecessors returns the sorted activities directly preceding a.
func (d *DFG) Predecessors(a string) []string {
	p, _ := d.graph.Predecessors(a)
	return p
}

// IsStart reports whether some trace starts with a.
func (d *DFG) IsStart(a string) bool { return d.start[a] > 0 }

// IsEnd reports whether some trace ends with a.
func (d *DFG) IsEnd(a string) bool { return d.end[a] > 0 }

// StartCount returns how many traces start with a.
func (d *DFG) StartCount(a string) int { return d.start[a] }

// EndCount returns how many traces end with a.
func (d *DFG) EndCount(a string) int { return d.end[a] }

// StartActivities returns the sorted start activities.
func (d *DFG) StartActivities() []string { return sortedKeys(d.start) }

// EndActivities returns the sorted end activities.
func (d *DFG) EndActivities() []string { return sortedKeys(d.end) }

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
