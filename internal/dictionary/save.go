package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"
)

// SortedWords returns the candidate set ordered by rune length, then
// lexicographically. The order depends only on set contents, never on
// insertion order.
func (g *Generator) SortedWords() []string {
	words := g.Words()
	sort.Slice(words, func(i, j int) bool {
		li := utf8.RuneCountInString(words[i])
		lj := utf8.RuneCountInString(words[j])
		if li != lj {
			return li < lj
		}
		return words[i] < words[j]
	})
	return words
}

// SaveToFile writes the sorted candidate set to path, one word per
// line, truncated to maxWords entries when maxWords > 0. The write is
// atomic (temp file + rename); on failure the in-memory set is left
// untouched so a corrected path can be retried.
func (g *Generator) SaveToFile(path string, maxWords int) error {
	words := g.SortedWords()
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
		g.logf("    Limited to %d words\n", maxWords)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordlist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp wordlist: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write wordlist: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush wordlist: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close wordlist: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write wordlist: %w", err)
	}
	g.logf("[+] Saved %d words to %s\n", len(words), path)
	return nil
}
