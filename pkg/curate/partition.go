package curate

// Partition splits a scored set by the answer threshold. Words scoring at
// or above the threshold land in kept, strictly below in dropped; the two
// slices together cover every entry exactly once, in source order.
func Partition(scored []WordScore, threshold float64) (kept, dropped []WordScore) {
	for _, item := range scored {
		if item.Freq >= threshold {
			kept = append(kept, item)
		} else {
			dropped = append(dropped, item)
		}
	}
	return kept, dropped
}

// AllowedGuesses filters the full scored set by an optional guesses
// threshold. A nil threshold keeps every source word without inspecting a
// single score. The filter always runs over the full scored set, never over
// the kept partition -- the allowed list is an independent view, not a
// narrowing of the answer list.
func AllowedGuesses(scored []WordScore, threshold *float64) []WordScore {
	if threshold == nil {
		allowed := make([]WordScore, len(scored))
		copy(allowed, scored)
		return allowed
	}
	var allowed []WordScore
	for _, item := range scored {
		if item.Freq >= *threshold {
			allowed = append(allowed, item)
		}
	}
	return allowed
}
