package miner

import (
	"context"

	"github.com/katalvlaran/procmine/cut"
	"github.com/katalvlaran/procmine/dfg"
	"github.com/katalvlaran/procmine/eventlog"
	"github.com/katalvlaran/procmine/tree"
)

// fallThrough tries the fall-through rules in order on a fragment on which no
// cut holds. Empty traces always make the fragment optional; the remaining
// rules run only with WithFallThroughs. It reports false when none applies.
func (r *run) fallThrough(ctx context.Context, log *eventlog.VariantLog, d *dfg.DFG, depth int) (*tree.Node, bool, error) {
	if log.HasEmptyTrace() {
		n, err := r.optional(ctx, log, depth)
		return n, err == nil, err
	}
	if !r.m.opts.FallThroughs {
		return nil, false, nil
	}
	logger := r.m.opts.Logger
	alphabet := log.Alphabet()

	if a, ok := oncePerTrace(log, alphabet); ok {
		logger.Debug("fall-through", "depth", depth, "rule", "activity once per trace", "activity", a)
		rest := cut.Project(log, cut.Partition{{a}, without(alphabet, a)})[1]
		n, err := r.parallelWith(ctx, tree.Leaf(a), rest, depth)
		return n, err == nil, err
	}

	if a, ok := r.concurrentActivity(log, alphabet); ok {
		logger.Debug("fall-through", "depth", depth, "rule", "activity concurrent", "activity", a)
		subs := cut.Project(log, cut.Partition{{a}, without(alphabet, a)})
		children, err := r.children(ctx, subs, depth+1)
		if err != nil {
			return nil, false, err
		}
		return tree.NewOperator(tree.OpParallel, children...), true, nil
	}

	if split, ok := splitTraces(log, func(prev, next string) bool {
		return d.IsEnd(prev) && d.IsStart(next)
	}); ok {
		logger.Debug("fall-through", "depth", depth, "rule", "strict tau loop")
		n, err := r.tauLoop(ctx, split, depth)
		return n, err == nil, err
	}

	if split, ok := splitTraces(log, func(_, next string) bool {
		return d.IsStart(next)
	}); ok {
		logger.Debug("fall-through", "depth", depth, "rule", "tau loop")
		n, err := r.tauLoop(ctx, split, depth)
		return n, err == nil, err
	}

	return nil, false, nil
}

// oncePerTrace finds the smallest activity occurring exactly once in every trace.
func oncePerTrace(log *eventlog.VariantLog, alphabet []string) (string, bool) {
	for _, a := range alphabet {
		once := true
		for _, v := range log.Variants() {
			n := 0
			for _, b := range v.Trace {
				if b == a {
					n++
				}
			}
			if n != 1 {
				once = false
				break
			}
		}
		if once {
			return a, true
		}
	}

	return "", false
}

// concurrentActivity finds the smallest activity whose removal leaves a log
// on which some cut holds.
func (r *run) concurrentActivity(log *eventlog.VariantLog, alphabet []string) (string, bool) {
	for _, a := range alphabet {
		rest := cut.Project(log, cut.Partition{{a}, without(alphabet, a)})[1].WithoutEmpty()
		if rest.AlphabetSize() < 2 {
			continue
		}
		d := dfg.Build(rest)
		for _, det := range r.m.detectors {
			if _, ok := det.Holds(rest, d); ok {
				return a, true
			}
		}
	}

	return "", false
}

func (r *run) parallelWith(ctx context.Context, first *tree.Node, rest *eventlog.VariantLog, depth int) (*tree.Node, error) {
	n, err := r.discover(ctx, rest, depth+1)
	if err != nil {
		return nil, err
	}

	return tree.NewOperator(tree.OpParallel, first, n), nil
}

func (r *run) tauLoop(ctx context.Context, split *eventlog.VariantLog, depth int) (*tree.Node, error) {
	body, err := r.discover(ctx, split, depth+1)
	if err != nil {
		return nil, err
	}

	return tree.NewOperator(tree.OpLoop, body, tree.Tau()), nil
}

// splitTraces cuts every trace between consecutive activities for which
// boundary holds, and reports whether any trace was cut.
func splitTraces(log *eventlog.VariantLog, boundary func(prev, next string) bool) (*eventlog.VariantLog, bool) {
	b := eventlog.NewBuilder()
	split := false
	for _, v := range log.Variants() {
		from := 0
		for i := 1; i < len(v.Trace); i++ {
			if boundary(v.Trace[i-1], v.Trace[i]) {
				b.Add(v.Trace[from:i], v.Count)
				from = i
				split = true
			}
		}
		b.Add(v.Trace[from:], v.Count)
	}
	if !split {
		return nil, false
	}
	out, err := b.Build()
	if err != nil {
		panic("miner: splitting a valid log failed: " + err.Error())
	}

	return out, true
}

func without(alphabet []string, a string) []string {
	out := make([]string, 0, len(alphabet)-1)
	for _, b := range alphabet {
		if b != a {
			out = append(out, b)
		}
	}

	return out
}
