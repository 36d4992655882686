package dictionary

import (
	"unicode/utf8"

	"github.com/verte-zerg/wordforge/internal/model"
)

// Statistics recomputes a snapshot of the current candidate set. The
// second return value is false when the set is empty.
func (g *Generator) Statistics() (model.GenerationStats, bool) {
	if len(g.words) == 0 {
		return model.GenerationStats{}, false
	}

	minLen := 0
	maxLen := 0
	total := 0
	first := true
	for word := range g.words {
		n := utf8.RuneCountInString(word)
		if first {
			minLen = n
			maxLen = n
			first = false
		}
		if n < minLen {
			minLen = n
		}
		if n > maxLen {
			maxLen = n
		}
		total += n
	}

	return model.GenerationStats{
		TotalWords:   len(g.words),
		UniqueWords:  len(g.words),
		MinLength:    minLen,
		MaxLength:    maxLen,
		AvgLength:    float64(total) / float64(len(g.words)),
		BaseWords:    g.baseWords,
		DatePatterns: g.datePatterns,
		Numbers:      g.numbers,
		Usernames:    g.usernames,
		Mutations:    g.mutations,
	}, true
}
