// Package dfg builds directly-follows graphs from variant logs.
//
// Build(log) walks every variant once: each consecutive pair (a, b) adds the
// variant's count to edge a→b, and the first and last activities are counted
// as start and end activities. Every activity of the log becomes a vertex,
// including activities that never take part in an edge.
//
// A DFG is a fresh value per call and is never mutated after Build; the
// discovery recursion rebuilds one per fragment instead of sharing state.
//
// FilterNoise(threshold) derives the reduced graph used by the
// infrequent-behaviour variant of discovery: edges carrying a small share of
// their source's outgoing behaviour are dropped, everything else is kept.
//
// Complexity:
//
//   - Build: O(Σ|trace|) over the variants, plus O(V log V) for sorting.
//   - FilterNoise: O(V + E).
package dfg
