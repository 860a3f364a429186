package eventlog

// Variants returns the variants in lexicographic trace order.
// The returned slice is a copy; the traces inside it must not be modified.
func (l *VariantLog) Variants() []Variant {
	out := make([]Variant, len(l.variants))
	copy(out, l.variants)

	return out
}

// Len reports the number of distinct variants, the empty trace included.
func (l *VariantLog) Len() int { return len(l.variants) }

// TraceCount reports the total number of recorded cases.
func (l *VariantLog) TraceCount() int { return l.total }

// IsEmpty reports whether the log holds no variants at all.
func (l *VariantLog) IsEmpty() bool { return len(l.variants) == 0 }

// Alphabet returns the sorted distinct activities of the log.
func (l *VariantLog) Alphabet() []string {
	out := make([]string, len(l.alphabet))
	copy(out, l.alphabet)

	return out
}

// AlphabetSize reports the number of distinct activities.
func (l *VariantLog) AlphabetSize() int { return len(l.alphabet) }

// Count returns the frequency of trace, or 0 when it is not a variant.
func (l *VariantLog) Count(trace Trace) int {
	i, ok := l.index[trace.key()]
	if !ok {
		return 0
	}

	return l.variants[i].Count
}

// EmptyCount returns the frequency of the empty trace.
func (l *VariantLog) EmptyCount() int { return l.Count(nil) }

// HasEmptyTrace reports whether the empty trace is a variant.
func (l *VariantLog) HasEmptyTrace() bool { return l.EmptyCount() > 0 }

// OnlyEmpty reports whether the log is empty or holds nothing but empty traces.
func (l *VariantLog) OnlyEmpty() bool { return len(l.alphabet) == 0 }

// WithoutEmpty returns a log with the empty trace removed.
// When l has no empty trace, l itself is returned.
func (l *VariantLog) WithoutEmpty() *VariantLog {
	if !l.HasEmptyTrace() {
		return l
	}
	b := NewBuilder()
	for _, v := range l.variants {
		if len(v.Trace) > 0 {
			b.Add(v.Trace, v.Count)
		}
	}
	out, err := b.Build()
	if err != nil {
		panic("eventlog: filtering a valid log failed: " + err.Error())
	}

	return out
}

// Activities returns the multiset of activities of the log: every activity
// mapped to its number of occurrences across all cases.
func (l *VariantLog) Activities() map[string]int {
	out := make(map[string]int, len(l.alphabet))
	for _, v := range l.variants {
		for _, a := range v.Trace {
			out[a] += v.Count
		}
	}

	return out
}
