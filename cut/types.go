package cut

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/procmine/dfg"
	"github.com/katalvlaran/procmine/eventlog"
	"github.com/katalvlaran/procmine/tree"
)

// Sentinel errors reported by Partition.Validate.
var (
	// ErrTooFewGroups indicates a partition with fewer than two groups.
	ErrTooFewGroups = errors.New("cut: partition needs at least two groups")

	// ErrEmptyGroup indicates a group without activities.
	ErrEmptyGroup = errors.New("cut: empty group")

	// ErrOverlappingGroups indicates an activity placed in two groups.
	ErrOverlappingGroups = errors.New("cut: activity in more than one group")

	// ErrIncompleteCover indicates that the groups do not cover the alphabet exactly.
	ErrIncompleteCover = errors.New("cut: groups do not cover the alphabet")
)

// Kind enumerates the cut family.
type Kind int

const (
	// KindExclusiveChoice splits the alphabet into unconnected components.
	KindExclusiveChoice Kind = iota
	// KindSequence splits the alphabet into a forward chain.
	KindSequence
	// KindParallel splits the alphabet into fully interleaved groups.
	KindParallel
	// KindLoop splits the alphabet into a body and redo groups.
	KindLoop
)

// String names the kind.
func (k Kind) String() string {
	switch k {
	case KindExclusiveChoice:
		return "xor"
	case KindSequence:
		return "sequence"
	case KindParallel:
		return "parallel"
	case KindLoop:
		return "loop"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Operator returns the process-tree operator a successful cut of this kind produces.
func (k Kind) Operator() tree.Operator {
	switch k {
	case KindExclusiveChoice:
		return tree.OpXor
	case KindSequence:
		return tree.OpSequence
	case KindParallel:
		return tree.OpParallel
	case KindLoop:
		return tree.OpLoop
	}

	return tree.OpNone
}

// Detector is one member of the cut family.
type Detector interface {
	// Kind identifies the cut.
	Kind() Kind

	// Holds reports a feasible partition of the fragment described by log and
	// its directly-follows graph d, or false when the cut does not apply.
	Holds(log *eventlog.VariantLog, d *dfg.DFG) (Partition, bool)

	// Project splits log into one sub-log per group of p, in group order.
	Project(log *eventlog.VariantLog, p Partition) []*eventlog.VariantLog
}

// Default returns the detectors in their fixed trial order:
// exclusive choice, sequence, parallel, loop.
func Default() []Detector {
	return []Detector{ExclusiveChoice{}, Sequence{}, Parallel{}, Loop{}}
}

// Partition is an ordered list of activity groups. Each group is sorted.
type Partition [][]string

// Index maps every activity to the position of its group.
func (p Partition) Index() map[string]int {
	idx := make(map[string]int)
	for i, g := range p {
		for _, a := range g {
			idx[a] = i
		}
	}

	return idx
}

// Validate checks that p has at least two non-empty, pairwise disjoint groups
// whose union is exactly alphabet.
func (p Partition) Validate(alphabet []string) error {
	if len(p) < 2 {
		return ErrTooFewGroups
	}
	seen := make(map[string]int)
	for i, g := range p {
		if len(g) == 0 {
			return fmt.Errorf("%w: group %d", ErrEmptyGroup, i)
		}
		for _, a := range g {
			if j, dup := seen[a]; dup {
				return fmt.Errorf("%w: %q in groups %d and %d", ErrOverlappingGroups, a, j, i)
			}
			seen[a] = i
		}
	}
	if len(seen) != len(alphabet) {
		return fmt.Errorf("%w: %d grouped, %d in alphabet", ErrIncompleteCover, len(seen), len(alphabet))
	}
	for _, a := range alphabet {
		if _, ok := seen[a]; !ok {
			return fmt.Errorf("%w: %q is not grouped", ErrIncompleteCover, a)
		}
	}

	return nil
}

// group is a mutable activity set used while a detector merges candidates.
type group map[string]struct{}

func newGroup(acts ...string) group {
	g := make(group, len(acts))
	for _, a := range acts {
		g[a] = struct{}{}
	}

	return g
}

func (g group) has(a string) bool {
	_, ok := g[a]
	return ok
}

func (g group) absorb(o group) {
	for a := range o {
		g[a] = struct{}{}
	}
}

// sorted returns the members of g in ascending order.
func (g group) sorted() []string {
	out := make([]string, 0, len(g))
	for a := range g {
		out = append(out, a)
	}
	sort.Strings(out)

	return out
}

// smallest returns the least member of a non-empty group.
func (g group) smallest() string {
	first := true
	var m string
	for a := range g {
		if first || a < m {
			m, first = a, false
		}
	}

	return m
}

// toPartition drops empty groups and sorts each remaining one, keeping order.
func toPartition(groups []group) Partition {
	p := make(Partition, 0, len(groups))
	for _, g := range groups {
		if len(g) > 0 {
			p = append(p, g.sorted())
		}
	}

	return p
}
