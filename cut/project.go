package cut

import (
	"github.com/katalvlaran/procmine/eventlog"
)

// Project is the generic log projector: for every variant and every group it
// keeps the activities of that group in their original order. A variant with
// no activity of a group contributes the empty trace to that group's sub-log,
// which lets the recursion notice that the group may be skipped. Variants that
// collapse onto the same projection have their counts summed.
func Project(log *eventlog.VariantLog, p Partition) []*eventlog.VariantLog {
	idx := p.Index()
	builders := newBuilders(len(p))
	for _, v := range log.Variants() {
		parts := make([]eventlog.Trace, len(p))
		for _, a := range v.Trace {
			if i, ok := idx[a]; ok {
				parts[i] = append(parts[i], a)
			}
		}
		for i, part := range parts {
			builders[i].Add(part, v.Count)
		}
	}

	return buildAll(builders)
}

func newBuilders(n int) []*eventlog.Builder {
	bs := make([]*eventlog.Builder, n)
	for i := range bs {
		bs[i] = eventlog.NewBuilder()
	}

	return bs
}

// buildAll finishes every builder. Projections only ever add sub-sequences of
// a validated log with its positive counts, so Build cannot fail here.
func buildAll(bs []*eventlog.Builder) []*eventlog.VariantLog {
	out := make([]*eventlog.VariantLog, len(bs))
	for i, b := range bs {
		l, err := b.Build()
		if err != nil {
			panic("cut: projection of a valid log failed: " + err.Error())
		}
		out[i] = l
	}

	return out
}
