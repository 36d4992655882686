// Package dictionary accumulates and orchestrates candidate wordlist
// generation.
package dictionary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/verte-zerg/wordforge/internal/model"
	"github.com/verte-zerg/wordforge/internal/pattern"
	"github.com/verte-zerg/wordforge/internal/wordlist"
)

// ErrNoSeedWords reports a generation run started without seed words.
var ErrNoSeedWords = errors.New("no seed words provided")

const (
	// Sequential suffixes are capped regardless of the requested
	// maximum to keep the numbers phase bounded.
	sequentialSuffixCap = 100
	// Hard cap on seed x number-sequence combinations.
	wordNumberCap = 1000
	// Length of ascending/repeated digit runs combined with seeds.
	numberSequenceLength = 4
	// Year decoration applied to usernames, matching the common
	// "name + current year" habit.
	usernameYearSuffix = "2024"
)

var usernameSuffixes = []string{"123", "@123", "!"}

// Generator owns the deduplicating candidate set for one run. A
// Generator is single-use: create, Generate, read stats, save.
type Generator struct {
	words    map[string]struct{}
	patterns *pattern.Generator
	progress io.Writer

	baseWords    int
	datePatterns int
	numbers      int
	usernames    int
	mutations    int
}

// New returns an empty Generator drawing patterns from patterns.
// Progress lines are written to progress; pass nil to stay silent.
func New(patterns *pattern.Generator, progress io.Writer) *Generator {
	if progress == nil {
		progress = io.Discard
	}
	return &Generator{
		words:    map[string]struct{}{},
		patterns: patterns,
		progress: progress,
	}
}

// Len returns the current unique candidate count.
func (g *Generator) Len() int {
	return len(g.words)
}

// Words returns the candidate set as an unordered slice.
func (g *Generator) Words() []string {
	out := make([]string, 0, len(g.words))
	for word := range g.words {
		out = append(out, word)
	}
	return out
}

// AddWord inserts word into the candidate set. Empty strings are
// dropped; re-inserting an existing word is a no-op.
func (g *Generator) AddWord(word string) {
	if word == "" {
		return
	}
	g.words[word] = struct{}{}
}

// AddWords applies AddWord to each element in order.
func (g *Generator) AddWords(words []string) {
	for _, word := range words {
		g.AddWord(word)
	}
}

// GenerateBaseWords inserts the seed words. It is a no-op on an empty
// list; Generate treats that case as a hard precondition failure.
func (g *Generator) GenerateBaseWords(seeds []string) {
	if len(seeds) == 0 {
		return
	}
	g.logf("[+] Adding %d base words...\n", len(seeds))
	g.AddWords(seeds)
	g.baseWords += len(seeds)
}

// GenerateWithDates combines every seed word with year patterns for
// the inclusive range, then zero-padded months 01-12 and days 01-31.
// The recorded statistic counts gross insertion attempts.
func (g *Generator) GenerateWithDates(seeds []string, startYear, endYear int) error {
	g.logf("[+] Generating date combinations (%d-%d)...\n", startYear, endYear)
	years, err := g.patterns.YearPatterns(startYear, endYear)
	if err != nil {
		return err
	}

	count := 0
	for _, word := range seeds {
		for _, year := range years {
			g.AddWord(word + year)
			count++
		}
		for month := 1; month <= 12; month++ {
			g.AddWord(fmt.Sprintf("%s%02d", word, month))
			count++
		}
		for day := 1; day <= 31; day++ {
			g.AddWord(fmt.Sprintf("%s%02d", word, day))
			count++
		}
	}
	g.logf("    Generated %d date combinations\n", count)
	g.datePatterns += count
	return nil
}

// GenerateWithNumbers decorates every seed word with the common suffix
// list and sequential suffixes 0..min(100, maxNumber), then pairs
// seeds with short digit runs under a hard combination cap.
func (g *Generator) GenerateWithNumbers(seeds []string, maxNumber int) {
	g.logf("[+] Generating number combinations...\n")
	count := 0

	suffixes := g.patterns.CommonSuffixes()
	limit := maxNumber
	if limit > sequentialSuffixCap {
		limit = sequentialSuffixCap
	}
	for _, word := range seeds {
		for _, suffix := range suffixes {
			g.AddWord(word + suffix)
			count++
		}
		for i := 0; i <= limit; i++ {
			g.AddWord(word + strconv.Itoa(i))
			count++
		}
	}

	sequences := g.patterns.NumberSequences(numberSequenceLength)
	combos := g.patterns.WordNumberCombinations(seeds, sequences, wordNumberCap)
	g.AddWords(combos)
	count += len(combos)

	g.logf("    Generated %d number combinations\n", count)
	g.numbers += count
}

// GenerateCommonPasswords inserts the breach-derived corpus.
func (g *Generator) GenerateCommonPasswords() {
	corpus := g.patterns.CommonPasswords()
	g.logf("[+] Adding %d common passwords...\n", len(corpus))
	g.AddWords(corpus)
}

// GenerateKeyboardPatterns inserts the fixed keyboard corpus plus the
// generated row-walk substrings.
func (g *Generator) GenerateKeyboardPatterns() {
	corpus := g.patterns.KeyboardCorpus()
	g.logf("[+] Adding %d keyboard patterns...\n", len(corpus))
	g.AddWords(corpus)
	g.AddWords(g.patterns.KeyboardWalkPatterns())
}

// ApplyLeetSpeak inserts leet-speak variants of each word.
func (g *Generator) ApplyLeetSpeak(words []string) {
	g.logf("[+] Applying leet-speak mutations...\n")
	count := 0
	for _, word := range words {
		variants := g.patterns.LeetVariants(word)
		g.AddWords(variants)
		count += len(variants)
	}
	g.logf("    Generated %d leet-speak variants\n", count)
	g.mutations += count
}

// ApplyUppercaseVariations inserts case variants of each word.
func (g *Generator) ApplyUppercaseVariations(words []string) {
	g.logf("[+] Applying uppercase variations...\n")
	count := 0
	for _, word := range words {
		variants := g.patterns.CaseVariants(word)
		g.AddWords(variants)
		count += len(variants)
	}
	g.logf("    Generated %d case variations\n", count)
	g.mutations += count
}

// ApplySpecialCharacters inserts special-character decorations of each
// word.
func (g *Generator) ApplySpecialCharacters(words []string) {
	g.logf("[+] Applying special character mutations...\n")
	count := 0
	for _, word := range words {
		variants := g.patterns.SpecialCharVariants(word)
		g.AddWords(variants)
		count += len(variants)
	}
	g.logf("    Generated %d special character variations\n", count)
	g.mutations += count
}

// GenerateFromUsernameFile ingests a newline-delimited username file
// and decorates each entry. The phase is best-effort: an unreadable
// file is logged and the run continues.
func (g *Generator) GenerateFromUsernameFile(path string) {
	if _, err := os.Stat(path); err != nil {
		g.logf("[-] Username file not found: %s\n", path)
		return
	}

	g.logf("[+] Reading usernames from %s...\n", path)
	usernames, err := wordlist.ReadLines(path)
	if err != nil {
		g.logf("[-] Error reading username file: %v\n", err)
		return
	}
	g.logf("    Found %d usernames\n", len(usernames))

	g.AddWords(usernames)
	g.usernames += len(usernames)
	for _, username := range usernames {
		for _, suffix := range usernameSuffixes {
			g.AddWord(username + suffix)
		}
		g.AddWord(username + usernameYearSuffix)

		cleaned := strings.ReplaceAll(username, ".", "")
		cleaned = strings.ReplaceAll(cleaned, "_", "")
		if cleaned != username {
			g.AddWord(cleaned)
			g.AddWord(cleaned + "123")
		}
	}
}

// Generate runs all phases in fixed order, each gated by its toggle:
// seeds, usernames, dates, common passwords, keyboard patterns,
// numbers, then the mutation passes. Mutations operate on the
// original seed words, not the accumulated set. It returns the final
// unique candidate count.
func (g *Generator) Generate(cfg model.GenerationConfig) (int, error) {
	if len(cfg.SeedWords) == 0 {
		g.logf("[-] No seed words provided\n")
		return 0, ErrNoSeedWords
	}

	g.GenerateBaseWords(cfg.SeedWords)

	if cfg.UsernameFile != "" {
		g.GenerateFromUsernameFile(cfg.UsernameFile)
	}

	if cfg.UseDates {
		if err := g.GenerateWithDates(cfg.SeedWords, cfg.StartYear, cfg.EndYear); err != nil {
			return 0, err
		}
	}

	if cfg.UseCommon {
		g.GenerateCommonPasswords()
	}

	if cfg.UseKeyboard {
		g.GenerateKeyboardPatterns()
	}

	if cfg.Mutations.Numbers {
		g.GenerateWithNumbers(cfg.SeedWords, model.DefaultMaxNumber)
	}

	if cfg.Mutations.LeetSpeak {
		g.ApplyLeetSpeak(cfg.SeedWords)
	}

	if cfg.Mutations.Uppercase {
		g.ApplyUppercaseVariations(cfg.SeedWords)
	}

	if cfg.Mutations.Special {
		g.ApplySpecialCharacters(cfg.SeedWords)
	}

	g.logf("[+] Generation complete: %d unique words\n", len(g.words))
	return len(g.words), nil
}

func (g *Generator) logf(format string, args ...any) {
	if _, err := fmt.Fprintf(g.progress, format, args...); err != nil {
		// Best-effort progress output.
		_ = err
	}
}
