package cut

import (
	"sort"

	"github.com/katalvlaran/procmine/dfg"
	"github.com/katalvlaran/procmine/eventlog"
)

// Parallel detects fully interleaved groups: every activity pair across two
// groups is joined by edges in both directions, and every group holds at
// least one start and one end activity.
type Parallel struct{}

// Kind returns KindParallel.
func (Parallel) Kind() Kind { return KindParallel }

// Holds reports the parallel groups of d, ordered by their smallest activity.
func (Parallel) Holds(_ *eventlog.VariantLog, d *dfg.DFG) (Partition, bool) {
	acts := d.Activities()
	if len(acts) < 2 {
		return nil, false
	}
	groups := make([]group, len(acts))
	for i, a := range acts {
		groups[i] = newGroup(a)
	}
	groups = mergeToFixpoint(groups, func(a, b string) bool {
		return !d.HasEdge(a, b) || !d.HasEdge(b, a)
	})

	// Fold every group missing a start or an end activity into a neighbour.
	for i := 0; i < len(groups) && len(groups) > 1; {
		if hasStartAndEnd(groups[i], d) {
			i++
			continue
		}
		target := i - 1
		if i == 0 {
			target = 1
		}
		groups[target].absorb(groups[i])
		groups = append(groups[:i], groups[i+1:]...)
	}
	if len(groups) < 2 || !hasStartAndEnd(groups[0], d) {
		return nil, false
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].smallest() < groups[j].smallest() })

	return toPartition(groups), true
}

// Project filters every trace onto each group; see Project.
func (Parallel) Project(log *eventlog.VariantLog, p Partition) []*eventlog.VariantLog {
	return Project(log, p)
}

func hasStartAndEnd(g group, d *dfg.DFG) bool {
	var start, end bool
	for a := range g {
		start = start || d.IsStart(a)
		end = end || d.IsEnd(a)
	}

	return start && end
}
