package miner

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for discovery.
var (
	// ErrNilLog is returned when Discover receives a nil log.
	ErrNilLog = errors.New("miner: log is nil")

	// ErrOptionViolation indicates that a WithX option received a meaningless value.
	ErrOptionViolation = errors.New("miner: invalid option value")
)

// Option configures a Miner.
type Option func(*Options)

// Options holds the discovery settings.
type Options struct {
	// StrictSequence merges sequence groups that may be skipped together.
	StrictSequence bool

	// FallThroughs enables the fall-through rules tried before the flower fallback.
	FallThroughs bool

	// NoiseThreshold, when positive, switches on infrequent-behaviour
	// filtering: empty traces making up at most this share of a fragment are
	// dropped, and when no cut holds, directly-follows edges weighing at most
	// this share of their source's outgoing frequency are ignored for one
	// more round of cut detection. Zero keeps every trace and edge.
	NoiseThreshold float64

	// MaxDepth bounds the number of nested cut levels; deeper fragments get
	// the flower fallback. Zero means unbounded.
	MaxDepth int

	// Parallelism is the number of goroutines that may build sibling
	// sub-trees at the same time. One means sequential.
	Parallelism int

	// Fold flattens nested operators of the same kind in the final tree.
	Fold bool

	// Logger receives debug records for every fragment. Never nil.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns sequential discovery with folding and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Parallelism: 1,
		Fold:        true,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// WithStrictSequence enables the strict sequence cut.
func WithStrictSequence() Option {
	return func(o *Options) {
		o.StrictSequence = true
	}
}

// WithFallThroughs enables the fall-through rules.
func WithFallThroughs() Option {
	return func(o *Options) {
		o.FallThroughs = true
	}
}

// WithNoiseThreshold filters infrequent behaviour with threshold f.
// f outside [0, 1] is an ErrOptionViolation.
func WithNoiseThreshold(f float64) Option {
	return func(o *Options) {
		if !(f >= 0 && f <= 1) {
			o.fail(fmt.Errorf("miner: WithNoiseThreshold(%v): %w", f, ErrOptionViolation))
			return
		}
		o.NoiseThreshold = f
	}
}

// WithMaxDepth allows at most d nested cut levels. Zero removes the bound;
// a negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.fail(fmt.Errorf("miner: WithMaxDepth(%d): %w", d, ErrOptionViolation))
			return
		}
		o.MaxDepth = d
	}
}

// WithParallelism lets up to n goroutines build sibling sub-trees.
// n below one is an ErrOptionViolation.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("miner: WithParallelism(%d): %w", n, ErrOptionViolation))
			return
		}
		o.Parallelism = n
	}
}

// WithLogger sends debug records to l. A nil l keeps the current logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithoutFold returns the tree exactly as the recursion built it.
func WithoutFold() Option {
	return func(o *Options) {
		o.Fold = false
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
