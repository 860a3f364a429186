package cut

import (
	"github.com/katalvlaran/procmine/bfs"
	"github.com/katalvlaran/procmine/dfg"
	"github.com/katalvlaran/procmine/eventlog"
)

// ExclusiveChoice detects groups with no directly-follows edge between them:
// the connected components of the undirected DFG.
type ExclusiveChoice struct{}

// Kind returns KindExclusiveChoice.
func (ExclusiveChoice) Kind() Kind { return KindExclusiveChoice }

// Holds reports the components of d when there are at least two.
func (ExclusiveChoice) Holds(_ *eventlog.VariantLog, d *dfg.DFG) (Partition, bool) {
	comps, err := bfs.Components(d.Graph())
	if err != nil || len(comps) < 2 {
		return nil, false
	}

	return Partition(comps), true
}

// Project sends every trace to the group holding most of its activities,
// keeping only that group's activities; ties go to the lowest group index.
// Under a true exclusive-choice cut a trace never leaves its group, so no
// sibling sub-log receives an empty trace on its behalf. An empty trace, if
// present, goes to the first group.
func (ExclusiveChoice) Project(log *eventlog.VariantLog, p Partition) []*eventlog.VariantLog {
	idx := p.Index()
	builders := newBuilders(len(p))
	hits := make([]int, len(p))
	for _, v := range log.Variants() {
		clear(hits)
		for _, a := range v.Trace {
			if i, ok := idx[a]; ok {
				hits[i]++
			}
		}
		best := 0
		for i := 1; i < len(hits); i++ {
			if hits[i] > hits[best] {
				best = i
			}
		}
		kept := make(eventlog.Trace, 0, hits[best])
		for _, a := range v.Trace {
			if i, ok := idx[a]; ok && i == best {
				kept = append(kept, a)
			}
		}
		builders[best].Add(kept, v.Count)
	}

	return buildAll(builders)
}
