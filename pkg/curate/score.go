package curate

// ScoreWords attaches a Zipf frequency to every word, in input order.
// Each occurrence is scored separately, so a word appearing twice in the
// source produces two entries. The result always has the same length as
// the input.
func ScoreWords(words []string, oracle Oracle) []WordScore {
	scored := make([]WordScore, 0, len(words))
	for _, word := range words {
		scored = append(scored, WordScore{Word: word, Freq: oracle.Zipf(word)})
	}
	return scored
}
