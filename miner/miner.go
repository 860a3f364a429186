package miner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/procmine/cut"
	"github.com/katalvlaran/procmine/dfg"
	"github.com/katalvlaran/procmine/eventlog"
	"github.com/katalvlaran/procmine/tree"
)

// Miner is a configured, reusable discovery engine. It holds no per-run
// state, so one Miner may serve concurrent Discover calls.
type Miner struct {
	opts      Options
	detectors []cut.Detector
}

// New returns a Miner configured by opts, or an error wrapping
// ErrOptionViolation when an option value is invalid.
func New(opts ...Option) (*Miner, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	detectors := cut.Default()
	if o.StrictSequence {
		for i, det := range detectors {
			if det.Kind() == cut.KindSequence {
				detectors[i] = cut.Sequence{Strict: true}
			}
		}
	}

	return &Miner{opts: o, detectors: detectors}, nil
}

// Discover builds a process tree for log with a one-shot Miner.
func Discover(log *eventlog.VariantLog, opts ...Option) (*tree.Node, error) {
	m, err := New(opts...)
	if err != nil {
		return nil, err
	}

	return m.Discover(log)
}

// Options returns the settings of m.
func (m *Miner) Options() Options { return m.opts }

// Discover builds a process tree for log.
func (m *Miner) Discover(log *eventlog.VariantLog) (*tree.Node, error) {
	return m.DiscoverContext(context.Background(), log)
}

// DiscoverContext builds a process tree for log and stops early with
// ctx.Err() when ctx is cancelled.
func (m *Miner) DiscoverContext(ctx context.Context, log *eventlog.VariantLog) (*tree.Node, error) {
	if log == nil {
		return nil, ErrNilLog
	}
	r := &run{m: m}
	if m.opts.Parallelism > 1 {
		r.slots = make(chan struct{}, m.opts.Parallelism-1)
	}
	m.opts.Logger.Debug("discovery started",
		"activities", log.AlphabetSize(),
		"variants", log.Len(),
		"traces", log.TraceCount(),
		"parallelism", m.opts.Parallelism)

	root, err := r.discover(ctx, log, 0)
	if err != nil {
		return nil, fmt.Errorf("miner: discover: %w", err)
	}
	if m.opts.Fold {
		root = tree.Fold(root)
	}
	m.opts.Logger.Debug("discovery finished", "nodes", root.Size(), "depth", root.Depth())

	return root, nil
}

// run carries the state of one Discover call.
type run struct {
	m *Miner

	// slots bounds the extra goroutines building sibling sub-trees; nil when sequential.
	slots chan struct{}
}

func (r *run) discover(ctx context.Context, log *eventlog.VariantLog, depth int) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := r.m.opts.Logger
	alphabet := log.Alphabet()
	logger.Debug("fragment", "depth", depth, "activities", alphabet, "variants", log.Len())

	switch {
	case log.OnlyEmpty():
		return tree.Tau(), nil
	case len(alphabet) == 1 && !log.HasEmptyTrace():
		return tree.Leaf(alphabet[0]), nil
	}

	noise := r.m.opts.NoiseThreshold
	if noise > 0 && log.HasEmptyTrace() {
		if float64(log.EmptyCount()) <= noise*float64(log.TraceCount()) {
			logger.Debug("infrequent empty traces dropped", "depth", depth, "empty", log.EmptyCount())
			return r.discover(ctx, log.WithoutEmpty(), depth)
		}
		return r.optional(ctx, log, depth)
	}

	if limit := r.m.opts.MaxDepth; limit > 0 && depth >= limit && len(alphabet) > 1 {
		logger.Debug("fallback", "depth", depth, "reason", "max depth")
		if log.HasEmptyTrace() {
			return tree.NewOperator(tree.OpXor, tree.Tau(), flower(alphabet)), nil
		}
		return flower(alphabet), nil
	}

	d := dfg.Build(log)
	n, ok, err := r.cut(ctx, log, d, depth)
	if err != nil || ok {
		return n, err
	}
	if noise > 0 {
		logger.Debug("noise filter", "depth", depth, "threshold", noise)
		n, ok, err = r.cut(ctx, log, d.FilterNoise(noise), depth)
		if err != nil || ok {
			return n, err
		}
	}

	n, ok, err = r.fallThrough(ctx, log, d, depth)
	if err != nil || ok {
		return n, err
	}

	logger.Debug("fallback", "depth", depth, "reason", "no cut")
	return flower(alphabet), nil
}

// cut applies the first detector that holds on d and discovers its projections.
func (r *run) cut(ctx context.Context, log *eventlog.VariantLog, d *dfg.DFG, depth int) (*tree.Node, bool, error) {
	for _, det := range r.m.detectors {
		p, ok := det.Holds(log, d)
		if !ok {
			continue
		}
		r.m.opts.Logger.Debug("cut", "depth", depth, "kind", det.Kind().String(), "groups", len(p))
		children, err := r.children(ctx, det.Project(log, p), depth+1)
		if err != nil {
			return nil, false, err
		}
		return tree.NewOperator(det.Kind().Operator(), children...), true, nil
	}

	return nil, false, nil
}

// optional returns X( tau, <tree of the non-empty traces> ).
func (r *run) optional(ctx context.Context, log *eventlog.VariantLog, depth int) (*tree.Node, error) {
	r.m.opts.Logger.Debug("optional fragment", "depth", depth, "empty", log.EmptyCount())
	rest, err := r.discover(ctx, log.WithoutEmpty(), depth+1)
	if err != nil {
		return nil, err
	}

	return tree.NewOperator(tree.OpXor, tree.Tau(), rest), nil
}

// children discovers every sub-log. Each child runs on a spare goroutine when
// a slot is free and inline otherwise, so nested fan-out never waits on a
// slot held by its own ancestors.
func (r *run) children(ctx context.Context, subs []*eventlog.VariantLog, depth int) ([]*tree.Node, error) {
	out := make([]*tree.Node, len(subs))
	g, gctx := errgroup.WithContext(ctx)
	for i, sub := range subs {
		if r.acquire() {
			g.Go(func() error {
				defer r.release()
				n, err := r.discover(gctx, sub, depth)
				out[i] = n
				return err
			})
			continue
		}
		n, err := r.discover(gctx, sub, depth)
		if err != nil {
			_ = g.Wait()
			return nil, err
		}
		out[i] = n
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *run) acquire() bool {
	if r.slots == nil {
		return false
	}
	select {
	case r.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

func (r *run) release() { <-r.slots }

// flower returns *( X( a1, ..., an ), tau ), or *( a1, tau ) for one activity.
func flower(alphabet []string) *tree.Node {
	leaves := make([]*tree.Node, len(alphabet))
	for i, a := range alphabet {
		leaves[i] = tree.Leaf(a)
	}
	body := leaves[0]
	if len(leaves) > 1 {
		body = tree.NewOperator(tree.OpXor, leaves...)
	}

	return tree.NewOperator(tree.OpLoop, body, tree.Tau())
}
