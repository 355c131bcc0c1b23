package freq

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
	"github.com/vmihailenco/msgpack/v5"
)

// cacheExt marks compiled dictionary snapshots.
const cacheExt = ".msgpack"

// snapshot is the on-disk cache layout. Counts are kept as a plain map so
// the encoding stays independent of the in-memory trie representation.
type snapshot struct {
	Counts map[string]int64 `msgpack:"c"`
	Total  float64          `msgpack:"t"`
}

// SaveCache writes a compiled msgpack snapshot of the dictionary. Loading
// the snapshot back yields a dictionary with identical Zipf scores, without
// re-parsing the text corpus file.
func (d *Dictionary) SaveCache(path string) error {
	snap := snapshot{
		Counts: make(map[string]int64, d.words),
		Total:  d.total,
	}
	err := d.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		snap.Counts[string(prefix)] = item.(int64)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk dictionary: %w", err)
	}

	data, err := msgpack.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode dictionary cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dictionary cache %s: %w", path, err)
	}
	log.Debugf("Wrote dictionary cache: %d words to %s", d.words, path)
	return nil
}

// LoadCache restores a dictionary from a msgpack snapshot written by
// SaveCache.
func LoadCache(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary cache %s: %w", path, err)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode dictionary cache %s: %w", path, err)
	}

	d := &Dictionary{trie: patricia.NewTrie(), total: snap.Total}
	for word, count := range snap.Counts {
		d.trie.Set(patricia.Prefix(word), count)
		d.words++
	}
	log.Debugf("Loaded dictionary cache: %d words from %s", d.words, path)
	return d, nil
}
