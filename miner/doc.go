// Package miner discovers a process tree from a variant log by recursive cut
// detection over directly-follows graphs.
//
// For every log fragment the miner applies, in order:
//
//  1. Base cases: a fragment without activities becomes tau; a fragment with
//     a single activity and no empty traces becomes a leaf, however often the
//     activity repeats.
//  2. Cuts: exclusive choice, sequence, parallel, loop. The first that holds
//     wins; its projected sub-logs are discovered recursively and become the
//     operator's children in group order. Empty traces are ignored by the
//     directly-follows graph and carried into the projections.
//  3. Infrequent behaviour (WithNoiseThreshold): the cuts are tried once more
//     on a directly-follows graph without the rare edges.
//  4. Fall-throughs: a fragment with empty traces becomes X( tau, <rest> );
//     with WithFallThroughs, activity once per trace, activity concurrent,
//     strict tau loop and tau loop follow.
//  5. Fallback: the flower model *( X( a1, ..., an ), tau ) over the sorted
//     activities of the fragment. It accepts every trace of the fragment.
//
// With a noise threshold, rare empty traces are dropped when a fragment is
// entered and frequent ones make it optional right away.
//
// The output is deterministic: the same log yields the same tree whatever the
// order in which its variants were added and whatever the parallelism.
//
// Usage:
//
//	log, _ := eventlog.FromTraces(eventlog.Trace{"A", "B"}, eventlog.Trace{"A", "C"})
//	root, err := miner.Discover(log)
//	// root.String() == "->( 'A', X( 'B', 'C' ) )"
//
// Options tune the search (WithStrictSequence, WithFallThroughs,
// WithNoiseThreshold, WithMaxDepth), the execution (WithParallelism,
// WithLogger) and the output (WithoutFold).
// Config carries the same settings in YAML form.
package miner
