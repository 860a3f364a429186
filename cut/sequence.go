package cut

import (
	"math"
	"sort"

	"github.com/katalvlaran/procmine/dfg"
	"github.com/katalvlaran/procmine/dfs"
	"github.com/katalvlaran/procmine/eventlog"
)

// Sequence detects a chain of groups in which every path between two groups
// points forward.
//
// With Strict set, groups that may all be skipped together are merged
// afterwards, so that no child of the sequence can be bypassed by an edge
// jumping over it.
type Sequence struct {
	Strict bool
}

// Kind returns KindSequence.
func (Sequence) Kind() Kind { return KindSequence }

// Holds reports the sequence groups of d, or false when fewer than two remain.
//
// Steps:
//  1. Collapse strongly connected components: mutually reachable activities
//     can never be ordered.
//  2. Merge any two groups holding a pair of activities that are mutually
//     unreachable, or mutually reachable, until nothing changes.
//  3. Order groups by |pre(g)| + (|alphabet| − |post(g)|), ties by smallest activity.
//  4. Reject the result unless every path between two groups points forward.
func (s Sequence) Holds(_ *eventlog.VariantLog, d *dfg.DFG) (Partition, bool) {
	acts := d.Activities()
	if len(acts) < 2 {
		return nil, false
	}
	g := d.Graph()
	rel, err := dfs.TransitiveRelations(g)
	if err != nil {
		return nil, false
	}
	sccs, err := dfs.StronglyConnected(g)
	if err != nil {
		return nil, false
	}

	groups := make([]group, len(sccs))
	for i, c := range sccs {
		groups[i] = newGroup(c...)
	}
	// Seed groups in order of their smallest member so merging is order-independent.
	sort.Slice(groups, func(i, j int) bool { return groups[i].smallest() < groups[j].smallest() })
	groups = mergeToFixpoint(groups, func(a, b string) bool {
		ab, ba := rel.Reaches(a, b), rel.Reaches(b, a)
		return ab == ba
	})
	if len(groups) < 2 {
		return nil, false
	}

	n := len(acts)
	key := make(map[string]int, len(groups))
	for _, gr := range groups {
		pre, post := make(dfs.Set), make(dfs.Set)
		for a := range gr {
			for p := range rel.Pre[a] {
				if !gr.has(p) {
					pre[p] = struct{}{}
				}
			}
			for q := range rel.Post[a] {
				if !gr.has(q) {
					post[q] = struct{}{}
				}
			}
		}
		key[gr.smallest()] = len(pre) + (n - len(post))
	}
	sort.SliceStable(groups, func(i, j int) bool {
		si, sj := groups[i].smallest(), groups[j].smallest()
		if key[si] != key[sj] {
			return key[si] < key[sj]
		}
		return si < sj
	})
	for i := range groups {
		for j := i + 1; j < len(groups); j++ {
			for b := range groups[j] {
				for a := range groups[i] {
					if rel.Reaches(b, a) {
						return nil, false
					}
				}
			}
		}
	}

	if s.Strict {
		groups = strictMerge(groups, d)
		if len(groups) < 2 {
			return nil, false
		}
	}

	return toPartition(groups), true
}

// Project filters every trace onto each group; see Project.
func (Sequence) Project(log *eventlog.VariantLog, p Partition) []*eventlog.VariantLog {
	return Project(log, p)
}

// mergeToFixpoint repeatedly merges the first pair of groups (i < j) that
// holds an activity pair satisfying join, absorbing j into i.
func mergeToFixpoint(groups []group, join func(a, b string) bool) []group {
	for {
		i, j, found := findJoin(groups, join)
		if !found {
			return groups
		}
		groups[i].absorb(groups[j])
		groups = append(groups[:j], groups[j+1:]...)
	}
}

func findJoin(groups []group, join func(a, b string) bool) (int, int, bool) {
	for i := range groups {
		left := groups[i].sorted()
		for j := i + 1; j < len(groups); j++ {
			right := groups[j].sorted()
			for _, a := range left {
				for _, b := range right {
					if join(a, b) {
						return i, j, true
					}
				}
			}
		}
	}

	return 0, 0, false
}

// strictMerge collapses the neighbours of every skippable group into it.
//
// For group p, mf[p] is the lowest group index with an edge into p and mt[p]
// the highest group index p has an edge to; groups holding start (end)
// activities count as entered from −∞ (leaving to +∞). A group is skippable
// when an edge jumps over it, or a start activity lies after it, or an end
// activity lies before it.
func strictMerge(groups []group, d *dfg.DFG) []group {
	pos := make(map[string]int)
	for i, g := range groups {
		for a := range g {
			pos[a] = i
		}
	}
	mf := make([]int, len(groups))
	mt := make([]int, len(groups))
	for i, g := range groups {
		mf[i], mt[i] = math.MaxInt, math.MinInt
		for a := range g {
			if d.IsStart(a) {
				mf[i] = math.MinInt
			}
			if d.IsEnd(a) {
				mt[i] = math.MaxInt
			}
		}
	}
	for _, e := range d.Edges() {
		from, to := pos[e.From], pos[e.To]
		mf[to] = min(mf[to], from)
		mt[from] = max(mt[from], to)
	}

	skippable := func(p int) bool {
		cur := make(map[string]int, len(pos))
		for i, g := range groups {
			for a := range g {
				cur[a] = i
			}
		}
		for _, e := range d.Edges() {
			if cur[e.From] < p && cur[e.To] > p {
				return true
			}
		}
		for i, g := range groups {
			for a := range g {
				if (i > p && d.IsStart(a)) || (i < p && d.IsEnd(a)) {
					return true
				}
			}
		}
		return false
	}

	for p := range groups {
		if !skippable(p) {
			continue
		}
		for q := p - 1; q >= 0 && mt[q] <= p; q-- {
			groups[p].absorb(groups[q])
			groups[q] = group{}
		}
		for q := p + 1; q < len(groups) && mf[q] >= p; q++ {
			groups[p].absorb(groups[q])
			groups[q] = group{}
		}
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}

	return out
}
