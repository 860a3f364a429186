package eventlog

import (
	"fmt"
	"sort"
)

// Builder accumulates variants and produces a validated VariantLog.
// A Builder is not safe for concurrent use.
type Builder struct {
	counts   map[string]int
	traces   map[string]Trace
	declared map[string]bool // traces fixed by Set
	err      error           // first validation failure, reported by Build
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		counts:   make(map[string]int),
		traces:   make(map[string]Trace),
		declared: make(map[string]bool),
	}
}

// Add records count more cases following trace. Repeated calls for the same
// trace are summed. The first invalid call is remembered and returned by Build.
func (b *Builder) Add(trace Trace, count int) *Builder {
	if b.err != nil {
		return b
	}
	k, err := b.admit(trace, count)
	if err != nil {
		b.err = err
		return b
	}
	if b.declared[k] {
		b.err = fmt.Errorf("%w: %s added after Set", ErrConflictingCount, trace)
		return b
	}
	b.counts[k] += count

	return b
}

// Set declares that exactly count cases follow trace. Declaring the same trace
// again with a different count is malformed input, and so is calling Add for
// a trace already fixed by Set.
func (b *Builder) Set(trace Trace, count int) *Builder {
	if b.err != nil {
		return b
	}
	k, err := b.admit(trace, count)
	if err != nil {
		b.err = err
		return b
	}
	if prev, ok := b.counts[k]; ok && prev != count {
		b.err = fmt.Errorf("%w: %s has %d and %d", ErrConflictingCount, trace, prev, count)
		return b
	}
	b.counts[k] = count
	b.declared[k] = true

	return b
}

// admit validates a (trace, count) pair and registers a private copy of trace.
func (b *Builder) admit(trace Trace, count int) (string, error) {
	if count <= 0 {
		return "", fmt.Errorf("%w: %s has count %d", ErrNonPositiveCount, trace, count)
	}
	for i, a := range trace {
		if a == "" {
			return "", fmt.Errorf("%w: position %d of %s", ErrEmptyActivity, i, trace)
		}
	}
	k := trace.key()
	if _, ok := b.traces[k]; !ok {
		b.traces[k] = trace.Clone()
	}

	return k, nil
}

// Build validates the accumulated variants and returns the immutable log.
func (b *Builder) Build() (*VariantLog, error) {
	if b.err != nil {
		return nil, b.err
	}

	return newVariantLog(b.traces, b.counts), nil
}

// FromTraces builds a log in which every trace is one recorded case.
func FromTraces(traces ...Trace) (*VariantLog, error) {
	b := NewBuilder()
	for _, t := range traces {
		b.Add(t, 1)
	}

	return b.Build()
}

// FromVariants builds a log from explicit (trace, count) pairs.
// Listing the same trace twice with different counts returns ErrConflictingCount.
func FromVariants(variants ...Variant) (*VariantLog, error) {
	b := NewBuilder()
	for _, v := range variants {
		b.Set(v.Trace, v.Count)
	}

	return b.Build()
}

// MustFromVariants is like FromVariants but panics on malformed input.
// Intended for tests and package-level fixtures.
func MustFromVariants(variants ...Variant) *VariantLog {
	l, err := FromVariants(variants...)
	if err != nil {
		panic(err)
	}

	return l
}

// newVariantLog assembles a log from already validated maps.
func newVariantLog(traces map[string]Trace, counts map[string]int) *VariantLog {
	l := &VariantLog{
		variants: make([]Variant, 0, len(counts)),
		index:    make(map[string]int, len(counts)),
	}
	seen := make(map[string]struct{})
	for k, c := range counts {
		t := traces[k]
		l.variants = append(l.variants, Variant{Trace: t, Count: c})
		l.total += c
		for _, a := range t {
			seen[a] = struct{}{}
		}
	}
	sort.Slice(l.variants, func(i, j int) bool {
		return compareTraces(l.variants[i].Trace, l.variants[j].Trace) < 0
	})
	for i, v := range l.variants {
		l.index[v.Trace.key()] = i
	}
	l.alphabet = make([]string, 0, len(seen))
	for a := range seen {
		l.alphabet = append(l.alphabet, a)
	}
	sort.Strings(l.alphabet)

	return l
}

// compareTraces orders traces lexicographically element by element;
// a proper prefix sorts first.
func compareTraces(a, b Trace) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}
