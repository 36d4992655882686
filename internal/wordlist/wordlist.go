// Package wordlist loads newline-delimited word files.
package wordlist

import (
	"bufio"
	"os"
	"strings"
)

// ReadLines reads one entry per line from the provided file path.
// Surrounding whitespace is trimmed and blank lines are skipped. An
// empty file yields an empty slice, not an error.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
