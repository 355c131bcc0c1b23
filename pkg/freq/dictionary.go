/*
Package freq provides the Zipf frequency dictionary behind the curation
pipeline's scoring oracle.

The dictionary is built from a plain-text corpus frequency file, one
"word count" pair per line, and held in a Patricia trie keyed by the
lower-cased word. Zipf(word) converts the stored count into the base-10 log
of occurrences per billion tokens. A compiled msgpack snapshot of the same
data can be written and reloaded to skip text parsing on startup.
*/
package freq

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

const perBillion = 1e9

// Dictionary maps lower-cased words to corpus occurrence counts and scores
// them on the Zipf scale. Built once, then read-only.
type Dictionary struct {
	trie  *patricia.Trie
	total float64
	words int
}

// Load builds a Dictionary from path, dispatching on the file extension:
// ".msgpack" loads a compiled cache, anything else is parsed as the
// "word count" text format.
func Load(path string) (*Dictionary, error) {
	if filepath.Ext(path) == cacheExt {
		return LoadCache(path)
	}
	return LoadText(path)
}

// LoadText parses a corpus frequency file: one "word count" pair per line,
// whitespace-separated. Blank lines and lines starting with '#' are skipped.
// Words are stored lower-cased; a repeated word accumulates its counts.
func LoadText(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frequency file %s: %w", path, err)
	}
	defer file.Close()

	d := &Dictionary{trie: patricia.NewTrie()}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed frequency entry at %s:%d: %q", path, lineNo, line)
		}
		count, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil || count <= 0 {
			return nil, fmt.Errorf("invalid count at %s:%d: %q", path, lineNo, fields[1])
		}
		d.insert(strings.ToLower(fields[0]), count)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frequency file %s: %w", path, err)
	}

	log.Debugf("Loaded %d words (%d tokens) from %s", d.words, int64(d.total), path)
	return d, nil
}

// insert adds count occurrences of an already lower-cased word.
func (d *Dictionary) insert(word string, count int64) {
	prefix := patricia.Prefix(word)
	if item := d.trie.Get(prefix); item != nil {
		d.trie.Set(prefix, item.(int64)+count)
	} else {
		d.trie.Set(prefix, count)
		d.words++
	}
	d.total += float64(count)
}

// Lookup returns the stored occurrence count for a word, case-insensitively.
func (d *Dictionary) Lookup(word string) (int64, bool) {
	item := d.trie.Get(patricia.Prefix(strings.ToLower(word)))
	if item == nil {
		return 0, false
	}
	return item.(int64), true
}

// Zipf scores a word on the Zipf scale: log10 of estimated occurrences per
// billion tokens. Unknown words score 0, and vanishingly rare words are
// floored at 0 as well, so callers never need to distinguish the two.
func (d *Dictionary) Zipf(word string) float64 {
	count, ok := d.Lookup(word)
	if !ok || d.total == 0 {
		return 0
	}
	z := math.Log10(float64(count) / d.total * perBillion)
	if z < 0 {
		return 0
	}
	return z
}

// Len reports the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return d.words
}

// TotalTokens reports the corpus token total the Zipf scale is relative to.
func (d *Dictionary) TotalTokens() float64 {
	return d.total
}
