// Package cut implements the four structural cuts of inductive process
// discovery and the projection of a log onto a cut's groups.
//
// A cut is a hypothesis about how the activities of a log fragment combine:
//
//   - ExclusiveChoice: no directly-follows edge joins two groups.
//   - Sequence:        groups form a chain; every cross-group path points forward.
//   - Parallel:        every two groups are joined by edges in both directions and
//     every group holds a start and an end activity.
//   - Loop:            a body group holding all start and end activities, plus redo
//     groups entered only from end activities and left only to start activities.
//
// Every Detector answers Holds(log, dfg) with either a Partition of at least
// two non-empty, disjoint groups covering the alphabet, or false. Infeasibility
// is an ordinary result, not an error. Project then splits the log into one
// sub-log per group, in group order.
//
// Group order is deterministic: exclusive-choice and loop redo groups follow
// the order in which their smallest activity is discovered by a sorted-seed
// breadth-first search, parallel groups are ordered lexically by their
// smallest activity, sequence groups follow the chain.
package cut
