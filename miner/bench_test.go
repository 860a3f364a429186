package miner_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/katalvlaran/procmine/eventlog"
	"github.com/katalvlaran/procmine/miner"
)

// blockLog builds a log of width parallel branches, each a sequence of depth
// activities with an optional tail, shuffled into variants drawn from rng.
func blockLog(b *testing.B, width, depth, variants int) *eventlog.VariantLog {
	rng := rand.New(rand.NewPCG(1, uint64(width*depth)))
	builder := eventlog.NewBuilder()
	for v := 0; v < variants; v++ {
		branches := make([]eventlog.Trace, width)
		for w := range branches {
			n := depth
			if rng.IntN(2) == 0 {
				n-- // skip the tail activity
			}
			for d := 0; d < n; d++ {
				branches[w] = append(branches[w], "b"+strconv.Itoa(w)+"s"+strconv.Itoa(d))
			}
		}
		// Interleave the branches at random, keeping each branch in order.
		var tr eventlog.Trace
		for len(branches) > 0 {
			i := rng.IntN(len(branches))
			tr = append(tr, branches[i][0])
			if branches[i] = branches[i][1:]; len(branches[i]) == 0 {
				branches = append(branches[:i], branches[i+1:]...)
			}
		}
		builder.Add(tr, 1+rng.IntN(5))
	}
	l, err := builder.Build()
	if err != nil {
		b.Fatalf("build log: %v", err)
	}

	return l
}

func benchmarkDiscover(b *testing.B, width, depth, variants int, opts ...miner.Option) {
	l := blockLog(b, width, depth, variants)
	m, err := miner.New(opts...)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = m.Discover(l); err != nil {
			b.Fatalf("Discover failed: %v", err)
		}
	}
}

// BenchmarkDiscover_Small mines 3 branches of 3 steps.
func BenchmarkDiscover_Small(b *testing.B) { benchmarkDiscover(b, 3, 3, 50) }

// BenchmarkDiscover_Medium mines 5 branches of 5 steps.
func BenchmarkDiscover_Medium(b *testing.B) { benchmarkDiscover(b, 5, 5, 200) }

// BenchmarkDiscover_MediumParallel mines the medium log with 4 workers.
func BenchmarkDiscover_MediumParallel(b *testing.B) {
	benchmarkDiscover(b, 5, 5, 200, miner.WithParallelism(4))
}

// BenchmarkDiscover_FallThroughs mines the medium log with fall-throughs enabled.
func BenchmarkDiscover_FallThroughs(b *testing.B) {
	benchmarkDiscover(b, 5, 5, 200, miner.WithFallThroughs())
}
