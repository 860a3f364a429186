package cut_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/procmine/cut"
	"github.com/katalvlaran/procmine/dfg"
	"github.com/katalvlaran/procmine/eventlog"
	"github.com/katalvlaran/procmine/tree"
)

// logOf builds a log from compact traces: every rune is one activity and an
// empty string is the empty trace.
func logOf(t *testing.T, traces ...string) *eventlog.VariantLog {
	t.Helper()
	b := eventlog.NewBuilder()
	for _, s := range traces {
		b.Add(strings.Split(s, ""), 1)
	}
	l, err := b.Build()
	require.NoError(t, err)

	return l
}

// traces renders a sub-log as trace→count using the compact form of logOf.
func traces(l *eventlog.VariantLog) map[string]int {
	out := make(map[string]int, l.Len())
	for _, v := range l.Variants() {
		out[strings.Join(v.Trace, "")] = v.Count
	}

	return out
}

func holds(t *testing.T, det cut.Detector, l *eventlog.VariantLog) (cut.Partition, bool) {
	t.Helper()
	p, ok := det.Holds(l, dfg.Build(l))
	if ok {
		require.NoError(t, p.Validate(l.Alphabet()), "detector %s returned an invalid partition", det.Kind())
	}

	return p, ok
}

func TestPartition_Validate(t *testing.T) {
	alphabet := []string{"A", "B", "C"}

	assert.NoError(t, cut.Partition{{"A"}, {"B", "C"}}.Validate(alphabet))
	assert.ErrorIs(t, cut.Partition{{"A", "B", "C"}}.Validate(alphabet), cut.ErrTooFewGroups)
	assert.ErrorIs(t, cut.Partition{{"A", "B", "C"}, {}}.Validate(alphabet), cut.ErrEmptyGroup)
	assert.ErrorIs(t, cut.Partition{{"A", "B"}, {"B", "C"}}.Validate(alphabet), cut.ErrOverlappingGroups)
	assert.ErrorIs(t, cut.Partition{{"A"}, {"B"}}.Validate(alphabet), cut.ErrIncompleteCover)
	assert.ErrorIs(t, cut.Partition{{"A"}, {"B", "D"}}.Validate(alphabet), cut.ErrIncompleteCover)
}

func TestPartition_Index(t *testing.T) {
	idx := cut.Partition{{"A", "C"}, {"B"}}.Index()
	assert.Equal(t, map[string]int{"A": 0, "C": 0, "B": 1}, idx)
}

func TestKind(t *testing.T) {
	kinds := []cut.Kind{cut.KindExclusiveChoice, cut.KindSequence, cut.KindParallel, cut.KindLoop}
	ops := []tree.Operator{tree.OpXor, tree.OpSequence, tree.OpParallel, tree.OpLoop}
	names := []string{"xor", "sequence", "parallel", "loop"}
	for i, k := range kinds {
		assert.Equal(t, ops[i], k.Operator())
		assert.Equal(t, names[i], k.String())
	}
	assert.Equal(t, "Kind(9)", cut.Kind(9).String())
	assert.Equal(t, tree.OpNone, cut.Kind(9).Operator())

	var got []cut.Kind
	for _, d := range cut.Default() {
		got = append(got, d.Kind())
	}
	assert.Equal(t, kinds, got)
}

func TestExclusiveChoice(t *testing.T) {
	l := logOf(t, "A", "B")
	p, ok := holds(t, cut.ExclusiveChoice{}, l)
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B"}}, p)

	subs := cut.ExclusiveChoice{}.Project(l, p)
	require.Len(t, subs, 2)
	assert.Equal(t, map[string]int{"A": 1}, traces(subs[0]))
	assert.Equal(t, map[string]int{"B": 1}, traces(subs[1]))

	_, ok = holds(t, cut.ExclusiveChoice{}, logOf(t, "AB"))
	assert.False(t, ok)
}

func TestExclusiveChoice_GroupOrder(t *testing.T) {
	l := logOf(t, "DE", "AC", "B", "CA")
	p, ok := holds(t, cut.ExclusiveChoice{}, l)
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A", "C"}, {"B"}, {"D", "E"}}, p)

	subs := cut.ExclusiveChoice{}.Project(l, p)
	assert.Equal(t, map[string]int{"AC": 1, "CA": 1}, traces(subs[0]))
	assert.Equal(t, map[string]int{"DE": 1}, traces(subs[2]))
}

func TestSequence(t *testing.T) {
	p, ok := holds(t, cut.Sequence{}, logOf(t, "AB"))
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B"}}, p)

	// B and C loop on each other and collapse into one group.
	p, ok = holds(t, cut.Sequence{}, logOf(t, "ABCD", "ACBD", "ABCBD"))
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B", "C"}, {"D"}}, p)

	_, ok = holds(t, cut.Sequence{}, logOf(t, "AB", "BA"))
	assert.False(t, ok)
	_, ok = holds(t, cut.Sequence{}, logOf(t, "A"))
	assert.False(t, ok)
}

func TestSequence_Strict(t *testing.T) {
	l := logOf(t, "ABCD", "AD")

	p, ok := holds(t, cut.Sequence{}, l)
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B"}, {"C"}, {"D"}}, p)

	p, ok = holds(t, cut.Sequence{Strict: true}, l)
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B", "C"}, {"D"}}, p)

	subs := cut.Sequence{}.Project(l, p)
	require.Len(t, subs, 3)
	assert.Equal(t, map[string]int{"BC": 1, "": 1}, traces(subs[1]))
}

func TestParallel(t *testing.T) {
	l := logOf(t, "AB", "BA")
	p, ok := holds(t, cut.Parallel{}, l)
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B"}}, p)

	subs := cut.Parallel{}.Project(l, p)
	assert.Equal(t, map[string]int{"A": 2}, traces(subs[0]))
	assert.Equal(t, map[string]int{"B": 2}, traces(subs[1]))

	// C is not interleaved with anything.
	_, ok = holds(t, cut.Parallel{}, logOf(t, "ABC", "BAC"))
	assert.False(t, ok)
}

func TestParallel_GroupWithoutStartMerged(t *testing.T) {
	// Every pair is interleaved, but C never starts or ends a trace.
	p, ok := holds(t, cut.Parallel{}, logOf(t, "ACB", "BCA", "AB", "BA"))
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B", "C"}}, p)
}

func TestLoop(t *testing.T) {
	l := logOf(t, "A", "ABA")
	p, ok := holds(t, cut.Loop{}, l)
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B"}}, p)

	subs := cut.Loop{}.Project(l, p)
	require.Len(t, subs, 2)
	assert.Equal(t, map[string]int{"A": 3}, traces(subs[0]))
	assert.Equal(t, map[string]int{"B": 1}, traces(subs[1]))
}

func TestLoop_SegmentsAndRedoChoice(t *testing.T) {
	l := logOf(t, "A", "ABA", "ACA", "ABACA")
	p, ok := holds(t, cut.Loop{}, l)
	require.True(t, ok)
	assert.Equal(t, cut.Partition{{"A"}, {"B"}, {"C"}}, p)

	subs := cut.Loop{}.Project(l, p)
	require.Len(t, subs, 3)
	assert.Equal(t, map[string]int{"A": 8}, traces(subs[0]))
	assert.Equal(t, map[string]int{"B": 2}, traces(subs[1]))
	assert.Equal(t, map[string]int{"C": 2}, traces(subs[2]))
}

func TestLoop_ProjectKeepsChosenRedoGroup(t *testing.T) {
	// A partition found on a noise-filtered graph may split a redo segment:
	// BC ties between B and C and goes to B, losing C.
	l := logOf(t, "ABCA")
	subs := cut.Loop{}.Project(l, cut.Partition{{"A"}, {"B"}, {"C"}})
	require.Len(t, subs, 3)
	assert.Equal(t, map[string]int{"A": 2}, traces(subs[0]))
	assert.Equal(t, map[string]int{"B": 1}, traces(subs[1]))
	assert.True(t, subs[2].IsEmpty())
}

func TestLoop_StartOnlySuccessorJoinsBody(t *testing.T) {
	// A starts but never ends, so B, entered right after A, belongs to the body.
	_, ok := holds(t, cut.Loop{}, logOf(t, "ABCAD", "AD"))
	assert.False(t, ok)
}

func TestLoop_Infeasible(t *testing.T) {
	_, ok := holds(t, cut.Loop{}, logOf(t, "A", "B"))
	assert.False(t, ok, "no edges")

	_, ok = holds(t, cut.Loop{}, logOf(t, "AB"))
	assert.False(t, ok, "no redo part")
}

func TestProject_RecordsSkips(t *testing.T) {
	l := eventlog.MustFromVariants(
		eventlog.Variant{Trace: eventlog.Trace{"A", "B"}, Count: 2},
		eventlog.Variant{Trace: eventlog.Trace{"A"}, Count: 1},
	)
	subs := cut.Project(l, cut.Partition{{"A"}, {"B"}})
	require.Len(t, subs, 2)
	assert.Equal(t, map[string]int{"A": 3}, traces(subs[0]))
	assert.Equal(t, map[string]int{"B": 2, "": 1}, traces(subs[1]))
}

// TestDetectors_Properties runs every detector over random logs and checks that
// each feasible partition is valid and that projection keeps every occurrence.
func TestDetectors_Properties(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	alphabet := []string{"A", "B", "C", "D", "E"}
	for round := 0; round < 200; round++ {
		b := eventlog.NewBuilder()
		for n := 1 + rng.IntN(6); n > 0; n-- {
			tr := make(eventlog.Trace, 1+rng.IntN(6))
			for i := range tr {
				tr[i] = alphabet[rng.IntN(len(alphabet))]
			}
			b.Add(tr, 1+rng.IntN(3))
		}
		l, err := b.Build()
		require.NoError(t, err)
		d := dfg.Build(l)

		for _, det := range append(cut.Default(), cut.Sequence{Strict: true}) {
			p, ok := det.Holds(l, d)
			if !ok {
				continue
			}
			require.NoError(t, p.Validate(l.Alphabet()), "round %d, %s", round, det.Kind())

			want := l.Activities()
			got := make(map[string]int)
			for _, sub := range det.Project(l, p) {
				for a, c := range sub.Activities() {
					got[a] += c
				}
			}
			assert.Equal(t, want, got, "round %d, %s", round, det.Kind())
		}
	}
}
