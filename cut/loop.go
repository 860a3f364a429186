package cut

import (
	"github.com/katalvlaran/procmine/bfs"
	"github.com/katalvlaran/procmine/dfg"
	"github.com/katalvlaran/procmine/eventlog"
)

// Loop detects a body group holding every start and end activity, plus redo
// groups that are entered only from end activities and lead back only to
// start activities.
type Loop struct{}

// Kind returns KindLoop.
func (Loop) Kind() Kind { return KindLoop }

// Holds reports the body as group 0 followed by the redo groups, or false when
// no redo group survives. A DFG without edges never forms a loop.
func (Loop) Holds(_ *eventlog.VariantLog, d *dfg.DFG) (Partition, bool) {
	if d.EdgeCount() == 0 {
		return nil, false
	}
	starts, ends := d.StartActivities(), d.EndActivities()
	body := newGroup(starts...)
	body.absorb(newGroup(ends...))

	comps, err := bfs.Components(d.Graph(), bfs.WithExclude(body.has))
	if err != nil || len(comps) == 0 {
		return nil, false
	}
	redo := make([]group, len(comps))
	for i, c := range comps {
		redo[i] = newGroup(c...)
	}

	// A redo activity reached from a start-only activity, or leading to an
	// end-only activity, is part of the body.
	for _, a := range starts {
		if d.IsEnd(a) {
			continue
		}
		for _, b := range d.Successors(a) {
			redo = absorbOwner(body, redo, b)
		}
	}
	for _, b := range ends {
		if d.IsStart(b) {
			continue
		}
		for _, a := range d.Predecessors(b) {
			redo = absorbOwner(body, redo, a)
		}
	}

	// A redo group must return to every start activity and be entered from
	// every end activity it touches at all.
	for i := 0; i < len(redo); {
		if redoConnected(redo[i], starts, ends, d) {
			i++
			continue
		}
		body.absorb(redo[i])
		redo = append(redo[:i], redo[i+1:]...)
	}
	if len(redo) == 0 {
		return nil, false
	}

	return toPartition(append([]group{body}, redo...)), true
}

// absorbOwner moves the redo group containing a, if any, into body.
func absorbOwner(body group, redo []group, a string) []group {
	for i, g := range redo {
		if g.has(a) {
			body.absorb(g)
			return append(redo[:i], redo[i+1:]...)
		}
	}

	return redo
}

func redoConnected(g group, starts, ends []string, d *dfg.DFG) bool {
	for _, a := range g.sorted() {
		toStart, fromEnd := false, false
		for _, s := range starts {
			toStart = toStart || d.HasEdge(a, s)
		}
		for _, e := range ends {
			fromEnd = fromEnd || d.HasEdge(e, a)
		}
		if toStart {
			for _, s := range starts {
				if !d.HasEdge(a, s) {
					return false
				}
			}
		}
		if fromEnd {
			for _, e := range ends {
				if !d.HasEdge(e, a) {
					return false
				}
			}
		}
	}

	return true
}

// Project splits every trace into maximal body segments and redo segments.
// Each body segment becomes a trace of the body sub-log, an empty one when the
// trace ends right after a redo; each redo segment goes to the redo group that
// shares most distinct activities with it, ties to the lowest index, keeping
// only that group's activities.
func (Loop) Project(log *eventlog.VariantLog, p Partition) []*eventlog.VariantLog {
	idx := p.Index()
	builders := newBuilders(len(p))
	flushRedo := func(seg eventlog.Trace, count int) {
		hits := make([]int, len(p))
		seen := make(map[string]bool, len(seg))
		for _, a := range seg {
			if !seen[a] {
				seen[a] = true
				hits[idx[a]]++
			}
		}
		best := 1
		for i := 2; i < len(hits); i++ {
			if hits[i] > hits[best] {
				best = i
			}
		}
		kept := make(eventlog.Trace, 0, len(seg))
		for _, a := range seg {
			if idx[a] == best {
				kept = append(kept, a)
			}
		}
		builders[best].Add(kept, count)
	}

	for _, v := range log.Variants() {
		var bodySeg, redoSeg eventlog.Trace
		for _, a := range v.Trace {
			if idx[a] == 0 {
				if len(redoSeg) > 0 {
					flushRedo(redoSeg, v.Count)
					redoSeg = nil
				}
				bodySeg = append(bodySeg, a)
				continue
			}
			if len(bodySeg) > 0 {
				builders[0].Add(bodySeg, v.Count)
				bodySeg = nil
			}
			redoSeg = append(redoSeg, a)
		}
		if len(redoSeg) > 0 {
			flushRedo(redoSeg, v.Count)
		}
		builders[0].Add(bodySeg, v.Count)
	}

	return buildAll(builders)
}
