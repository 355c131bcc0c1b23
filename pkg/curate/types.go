/*
Package curate implements the word-list curation pipeline.

A source word list is loaded, scored against a Zipf frequency oracle, split
by threshold into an answer list and a set of rejects, and written back out as
deterministic artifacts: the sorted answer list, a sorted allowed-guesses
list, and a CSV report of rejected words with the score that excluded them.

The pipeline runs strictly in sequence: load, score, partition, write. Each
stage consumes its input slice and produces a fresh one; nothing is shared or
mutated across stages.
*/
package curate

// Oracle reports the Zipf frequency of a word: the base-10 log of its
// estimated occurrences per billion tokens in a reference corpus.
// Implementations are total -- words missing from the underlying dataset
// come back at or below any realistic threshold, never as an error.
type Oracle interface {
	Zipf(word string) float64
}

// WordScore pairs a normalized word with its Zipf frequency.
// Plain value, never mutated after the scorer creates it.
type WordScore struct {
	Word string
	Freq float64
}
