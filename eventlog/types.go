package eventlog

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for log construction.
var (
	// ErrNonPositiveCount indicates a variant frequency below one.
	ErrNonPositiveCount = errors.New("eventlog: variant count must be positive")

	// ErrEmptyActivity indicates an activity identifier equal to "".
	ErrEmptyActivity = errors.New("eventlog: activity identifier is empty")

	// ErrConflictingCount indicates a trace declared twice with different counts.
	ErrConflictingCount = errors.New("eventlog: conflicting counts for the same trace")
)

// Trace is an ordered sequence of activity identifiers.
// The zero-length Trace is the empty trace.
type Trace []string

// Variant pairs a distinct trace with the number of recorded cases following it.
type Variant struct {
	// Trace is the activity sequence. Callers must not modify it.
	Trace Trace

	// Count is the number of cases that follow Trace; always > 0.
	Count int
}

// VariantLog is an immutable multiset of traces.
type VariantLog struct {
	variants []Variant      // sorted lexicographically by trace
	index    map[string]int // trace key → position in variants
	alphabet []string       // sorted distinct activities
	total    int            // sum of all counts
}

// key encodes t into a collision-free map key using length prefixes,
// so activities may contain any byte.
func (t Trace) key() string {
	var sb strings.Builder
	for _, a := range t {
		sb.WriteString(strconv.Itoa(len(a)))
		sb.WriteByte(':')
		sb.WriteString(a)
	}

	return sb.String()
}

// String renders the trace as <a,b,c>.
func (t Trace) String() string {
	return "<" + strings.Join(t, ",") + ">"
}

// Clone returns a copy of t that shares no memory with it.
func (t Trace) Clone() Trace {
	out := make(Trace, len(t))
	copy(out, t)

	return out
}
