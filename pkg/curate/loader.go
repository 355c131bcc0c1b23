package curate

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// NotFoundError reports a source word list that does not exist on disk.
// The orchestrator treats it as a usage error and aborts before any
// scoring or writing happens.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// LoadWords reads a word list file into normalized words: each line is
// trimmed of surrounding whitespace, blank lines are skipped, and survivors
// are upper-cased. Order and duplicates are preserved exactly as they appear
// in the file.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, strings.ToUpper(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}
