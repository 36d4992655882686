package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRange reports an inverted year range.
var ErrInvalidRange = errors.New("invalid year range")

// Generator emits deterministic pattern sequences. It is stateless
// apart from the lookup tables captured at construction.
type Generator struct {
	tables Tables
}

// New returns a Generator backed by the given tables.
func New(tables Tables) *Generator {
	return &Generator{tables: tables}
}

// Tables returns the lookup tables the generator was built with.
func (g *Generator) Tables() Tables {
	return g.tables
}

// CommonPasswords returns a copy of the common-password corpus.
func (g *Generator) CommonPasswords() []string {
	return append([]string(nil), g.tables.CommonPasswords...)
}

// KeyboardCorpus returns a copy of the fixed keyboard-pattern corpus.
func (g *Generator) KeyboardCorpus() []string {
	return append([]string(nil), g.tables.KeyboardCorpus...)
}

// CommonSuffixes returns a copy of the common numeric/symbol suffixes.
func (g *Generator) CommonSuffixes() []string {
	return append([]string(nil), g.tables.CommonSuffixes...)
}

// YearPatterns emits the 4-digit and trailing-2-digit form of every
// year in [startYear, endYear], ascending, full form first.
func (g *Generator) YearPatterns(startYear, endYear int) ([]string, error) {
	if endYear < startYear {
		return nil, fmt.Errorf("%w: %d-%d", ErrInvalidRange, startYear, endYear)
	}
	years := make([]string, 0, (endYear-startYear+1)*2)
	for year := startYear; year <= endYear; year++ {
		full := strconv.Itoa(year)
		years = append(years, full)
		if len(full) > 2 {
			years = append(years, full[len(full)-2:])
		} else {
			years = append(years, full)
		}
	}
	return years, nil
}

// MonthPatterns emits months 1..12, unpadded then zero-padded.
func (g *Generator) MonthPatterns() []string {
	months := make([]string, 0, 24)
	for month := 1; month <= 12; month++ {
		months = append(months, strconv.Itoa(month))
		months = append(months, fmt.Sprintf("%02d", month))
	}
	return months
}

// DayPatterns emits days 1..31, unpadded then zero-padded.
func (g *Generator) DayPatterns() []string {
	days := make([]string, 0, 62)
	for day := 1; day <= 31; day++ {
		days = append(days, strconv.Itoa(day))
		days = append(days, fmt.Sprintf("%02d", day))
	}
	return days
}

// NumberSequences emits ascending-digit runs of length 1..maxLength,
// repeated-digit runs of length 2..maxLength per digit, then the
// notable-number list.
func (g *Generator) NumberSequences(maxLength int) []string {
	var sequences []string

	for length := 1; length <= maxLength; length++ {
		var b strings.Builder
		for i := 0; i < length; i++ {
			b.WriteString(strconv.Itoa(i))
		}
		sequences = append(sequences, b.String())
	}

	for digit := 0; digit <= 9; digit++ {
		for length := 2; length <= maxLength; length++ {
			sequences = append(sequences, strings.Repeat(strconv.Itoa(digit), length))
		}
	}

	sequences = append(sequences, g.tables.NotableNumbers...)
	return sequences
}

// KeyboardWalkPatterns emits each QWERTY row followed by its
// contiguous substrings of length >= 4 (all start positions, shortest
// first), then the fixed named walks.
func (g *Generator) KeyboardWalkPatterns() []string {
	var patterns []string
	for _, row := range g.tables.KeyboardRows {
		patterns = append(patterns, row)
		for i := 0; i+4 <= len(row); i++ {
			for j := i + 4; j <= len(row); j++ {
				patterns = append(patterns, row[i:j])
			}
		}
	}
	patterns = append(patterns, g.tables.KeyboardWalks...)
	return patterns
}

// WordNumberCombinations emits word+number pairs, word-major, stopping
// as soon as maxCombinations results exist (mid-pass, not at word
// boundaries).
func (g *Generator) WordNumberCombinations(words, numbers []string, maxCombinations int) []string {
	var combinations []string
	for _, word := range words {
		for _, number := range numbers {
			if len(combinations) >= maxCombinations {
				return combinations
			}
			combinations = append(combinations, word+number)
		}
	}
	return combinations
}
