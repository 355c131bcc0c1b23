package curate

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
)

// SaveWordList writes the words of a scored set to path, one per line with a
// trailing newline, sorted ascending by raw byte order so reruns produce
// byte-identical files on any platform. The input slice is left untouched.
func SaveWordList(path string, scores []WordScore) error {
	words := make([]string, 0, len(scores))
	for _, item := range scores {
		words = append(words, item.Word)
	}
	sort.Strings(words)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create word list %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, word := range words {
		fmt.Fprintf(w, "%s\n", word)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write word list %s: %w", path, err)
	}
	return nil
}

// ExportRejects writes the reject report: a CSV with a word,zipf_frequency
// header and one row per dropped word, rarest first. Frequencies are rendered
// with three decimal places. When dropped is empty no file is created at all.
// Equal scores keep their source order.
func ExportRejects(path string, dropped []WordScore) error {
	if len(dropped) == 0 {
		return nil
	}

	rows := make([]WordScore, len(dropped))
	copy(rows, dropped)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Freq < rows[j].Freq
	})

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create reject report %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"word", "zipf_frequency"}); err != nil {
		return fmt.Errorf("failed to write reject report header: %w", err)
	}
	for _, item := range rows {
		record := []string{item.Word, fmt.Sprintf("%.3f", item.Freq)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write reject row for %s: %w", item.Word, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write reject report %s: %w", path, err)
	}
	return nil
}
