// Package eventlog provides the variant log: an immutable multiset of activity
// sequences that every discovery component reads.
//
// A VariantLog maps each distinct Trace (an ordered sequence of activity
// identifiers) to a positive frequency. Logs are assembled with a Builder,
// validated once at Build time and never mutated afterwards, so they can be
// shared freely between goroutines.
//
// Key features:
//   - Builder.Add merges repeated traces by summing their counts.
//   - Builder.Set declares a frequency; conflicting declarations are rejected.
//   - Variants() and Alphabet() return deterministic, lexicographic orders.
//   - The empty trace is a regular variant and is kept only when added explicitly.
//
// Errors:
//
//   - ErrNonPositiveCount  a count of zero or less was supplied.
//   - ErrEmptyActivity     a trace contains the empty activity identifier.
//   - ErrConflictingCount  the same trace was declared with different counts.
//
// Complexity:
//
//   - Build:    O(T·L log V) for T traces of length L and V variants (sorting).
//   - Queries:  O(1) or O(V) and never allocate more than their result.
package eventlog
