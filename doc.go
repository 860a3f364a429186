// Package procmine discovers block-structured process models from event logs.
//
// A log of activity sequences goes in; a process tree comes out. The tree is
// built by inductive discovery: the directly-follows graph of the log is
// searched for a cut (exclusive choice, sequence, parallel or loop), the log
// is projected onto the groups of that cut, and every sub-log is discovered
// recursively until single activities remain.
//
//	eventlog/ variant logs: distinct traces with their frequencies
//	core/     thread-safe weighted directed graph
//	dfs/      depth-first search, transitive relations, strongly connected components
//	bfs/      breadth-first connected components
//	dfg/      directly-follows graph with start and end activities
//	cut/      the four cut detectors and log projection
//	tree/     process tree nodes, folding, JSON encoding
//	miner/    the recursive model builder, options and YAML config
//
// Quick example:
//
//	log, _ := eventlog.FromTraces(
//		eventlog.Trace{"A", "B", "D"},
//		eventlog.Trace{"A", "C", "D"},
//	)
//	root, _ := miner.Discover(log)
//	fmt.Println(root) // ->( 'A', X( 'B', 'C' ), 'D' )
//
// The output is deterministic and every activity of the log labels exactly
// one leaf of the tree, unless miner.WithNoiseThreshold filters it out as
// infrequent behaviour.
package procmine
