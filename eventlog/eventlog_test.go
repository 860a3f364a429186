package eventlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/procmine/eventlog"
)

func TestBuilder_MergesRepeatedTraces(t *testing.T) {
	l, err := eventlog.NewBuilder().
		Add(eventlog.Trace{"A", "B"}, 2).
		Add(eventlog.Trace{"A", "B"}, 3).
		Add(eventlog.Trace{"C"}, 1).
		Build()
	require.NoError(t, err)

	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 6, l.TraceCount())
	assert.Equal(t, 5, l.Count(eventlog.Trace{"A", "B"}))
	assert.Equal(t, []string{"A", "B", "C"}, l.Alphabet())
	assert.Equal(t, 3, l.AlphabetSize())
}

func TestBuilder_RejectsMalformedInput(t *testing.T) {
	_, err := eventlog.NewBuilder().Add(eventlog.Trace{"A"}, 0).Build()
	assert.ErrorIs(t, err, eventlog.ErrNonPositiveCount)

	_, err = eventlog.NewBuilder().Add(eventlog.Trace{"A", ""}, 1).Build()
	assert.ErrorIs(t, err, eventlog.ErrEmptyActivity)

	_, err = eventlog.FromVariants(
		eventlog.Variant{Trace: eventlog.Trace{"A"}, Count: 2},
		eventlog.Variant{Trace: eventlog.Trace{"A"}, Count: 3},
	)
	assert.ErrorIs(t, err, eventlog.ErrConflictingCount)

	_, err = eventlog.NewBuilder().Set(eventlog.Trace{"A"}, 2).Add(eventlog.Trace{"A"}, 1).Build()
	assert.ErrorIs(t, err, eventlog.ErrConflictingCount)
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	_, err := eventlog.NewBuilder().
		Add(eventlog.Trace{"A"}, -1).
		Add(eventlog.Trace{""}, 1).
		Build()
	assert.ErrorIs(t, err, eventlog.ErrNonPositiveCount)
	assert.NotErrorIs(t, err, eventlog.ErrEmptyActivity)
}

func TestFromVariants_SameCountIsAccepted(t *testing.T) {
	l, err := eventlog.FromVariants(
		eventlog.Variant{Trace: eventlog.Trace{"A"}, Count: 2},
		eventlog.Variant{Trace: eventlog.Trace{"A"}, Count: 2},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 2, l.TraceCount())
}

func TestVariantLog_DeterministicOrder(t *testing.T) {
	a, err := eventlog.FromTraces(
		eventlog.Trace{"B"}, eventlog.Trace{"A", "C"}, eventlog.Trace{"A"}, eventlog.Trace{},
	)
	require.NoError(t, err)
	b, err := eventlog.FromTraces(
		eventlog.Trace{}, eventlog.Trace{"A"}, eventlog.Trace{"A", "C"}, eventlog.Trace{"B"},
	)
	require.NoError(t, err)

	assert.Equal(t, a.Variants(), b.Variants())
	got := make([]string, 0, a.Len())
	for _, v := range a.Variants() {
		got = append(got, v.Trace.String())
	}
	assert.Equal(t, []string{"<>", "<A>", "<A,C>", "<B>"}, got)
}

func TestVariantLog_EmptyTraces(t *testing.T) {
	l := eventlog.MustFromVariants(
		eventlog.Variant{Trace: eventlog.Trace{}, Count: 4},
		eventlog.Variant{Trace: eventlog.Trace{"A"}, Count: 1},
	)
	assert.True(t, l.HasEmptyTrace())
	assert.Equal(t, 4, l.EmptyCount())
	assert.False(t, l.OnlyEmpty())

	rest := l.WithoutEmpty()
	assert.False(t, rest.HasEmptyTrace())
	assert.Equal(t, 1, rest.TraceCount())
	assert.Equal(t, []eventlog.Variant{{Trace: eventlog.Trace{"A"}, Count: 1}}, rest.Variants())
	assert.Same(t, rest, rest.WithoutEmpty())

	onlyEmpty := eventlog.MustFromVariants(eventlog.Variant{Trace: nil, Count: 1})
	assert.True(t, onlyEmpty.OnlyEmpty())
	assert.False(t, onlyEmpty.IsEmpty())
	assert.NotPanics(t, func() {
		assert.True(t, onlyEmpty.WithoutEmpty().IsEmpty())
	})

	empty, err := eventlog.NewBuilder().Build()
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
	assert.True(t, empty.OnlyEmpty())
}

func TestVariantLog_KeysDoNotCollide(t *testing.T) {
	// "AB" must not be confused with "A","B" whatever the encoding.
	l, err := eventlog.FromTraces(eventlog.Trace{"AB"}, eventlog.Trace{"A", "B"}, eventlog.Trace{"1:A"})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Count(eventlog.Trace{"AB"}))
	assert.Equal(t, 0, l.Count(eventlog.Trace{"B", "A"}))
}

func TestVariantLog_IsolatedFromCallerSlices(t *testing.T) {
	tr := eventlog.Trace{"A", "B"}
	l, err := eventlog.FromTraces(tr)
	require.NoError(t, err)
	tr[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, l.Alphabet())
	assert.Equal(t, 1, l.Count(eventlog.Trace{"A", "B"}))
}

func TestVariantLog_Activities(t *testing.T) {
	l := eventlog.MustFromVariants(
		eventlog.Variant{Trace: eventlog.Trace{"A", "B", "A"}, Count: 2},
		eventlog.Variant{Trace: eventlog.Trace{"B"}, Count: 1},
	)
	assert.Equal(t, map[string]int{"A": 4, "B": 3}, l.Activities())
}
