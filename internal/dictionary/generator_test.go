package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/wordforge/internal/model"
	"github.com/verte-zerg/wordforge/internal/pattern"
)

func newTestGenerator() *Generator {
	return New(pattern.New(pattern.DefaultTables()), nil)
}

func TestAddWordIdempotent(t *testing.T) {
	gen := newTestGenerator()
	gen.AddWord("admin")
	gen.AddWord("admin")
	if gen.Len() != 1 {
		t.Fatalf("expected 1 word after duplicate insert, got %d", gen.Len())
	}
}

func TestAddWordDropsEmpty(t *testing.T) {
	gen := newTestGenerator()
	gen.AddWord("")
	gen.AddWords([]string{"", "user", ""})
	if gen.Len() != 1 {
		t.Fatalf("expected only non-empty words, got %d", gen.Len())
	}
}

func TestGenerateBaseWordsEmptyIsNoop(t *testing.T) {
	gen := newTestGenerator()
	gen.GenerateBaseWords(nil)
	if gen.Len() != 0 {
		t.Fatalf("expected empty set, got %d", gen.Len())
	}
}

func TestGenerateEmptySeeds(t *testing.T) {
	gen := newTestGenerator()
	count, err := gen.Generate(model.GenerationConfig{})
	if !errors.Is(err, ErrNoSeedWords) {
		t.Fatalf("expected ErrNoSeedWords, got %v", err)
	}
	if count != 0 || gen.Len() != 0 {
		t.Fatalf("expected zero result, got count=%d len=%d", count, gen.Len())
	}
}

func TestGenerateInvalidYearRange(t *testing.T) {
	gen := newTestGenerator()
	cfg := model.GenerationConfig{
		SeedWords: []string{"admin"},
		UseDates:  true,
		StartYear: 2024,
		EndYear:   2023,
	}
	if _, err := gen.Generate(cfg); !errors.Is(err, pattern.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestGenerateDatesOnly(t *testing.T) {
	gen := newTestGenerator()
	cfg := model.GenerationConfig{
		SeedWords: []string{"admin"},
		UseDates:  true,
		StartYear: 2023,
		EndYear:   2024,
	}
	count, err := gen.Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	expected := map[string]struct{}{"admin": {}, "admin2023": {}, "admin2024": {}}
	for month := 1; month <= 12; month++ {
		expected[fmt.Sprintf("admin%02d", month)] = struct{}{}
	}
	for day := 1; day <= 31; day++ {
		expected[fmt.Sprintf("admin%02d", day)] = struct{}{}
	}
	// Short year forms collide with day combinations.
	expected["admin23"] = struct{}{}
	expected["admin24"] = struct{}{}

	if count != len(expected) {
		t.Fatalf("expected %d unique words, got %d", len(expected), count)
	}
	for _, word := range gen.Words() {
		if _, ok := expected[word]; !ok {
			t.Fatalf("unexpected candidate %q", word)
		}
	}
	for _, want := range []string{"admin2023", "admin23", "admin2024", "admin24", "admin01", "admin12", "admin31"} {
		if !gen.contains(want) {
			t.Fatalf("expected candidate %q", want)
		}
	}
}

func TestGenerateDatesStatsCountGross(t *testing.T) {
	gen := newTestGenerator()
	if err := gen.GenerateWithDates([]string{"admin"}, 2023, 2024); err != nil {
		t.Fatalf("GenerateWithDates failed: %v", err)
	}
	stats, ok := gen.Statistics()
	if !ok {
		t.Fatalf("expected statistics")
	}
	// 4 years + 12 months + 31 days attempted, regardless of dedup.
	if stats.DatePatterns != 47 {
		t.Fatalf("expected 47 gross date insertions, got %d", stats.DatePatterns)
	}
	if stats.TotalWords >= 47 {
		t.Fatalf("expected dedup below gross count, got %d", stats.TotalWords)
	}
}

func TestGenerateWithNumbersCapsSequential(t *testing.T) {
	gen := newTestGenerator()
	gen.GenerateWithNumbers([]string{"admin"}, 100000)
	for _, want := range []string{"admin1", "admin123", "admin!", "admin@@", "admin0", "admin100"} {
		if !gen.contains(want) {
			t.Fatalf("expected candidate %q", want)
		}
	}
	if gen.contains("admin102") {
		t.Fatalf("sequential suffixes must stop at 100")
	}
	// Seed x digit-run combinations ride along.
	if !gen.contains("admin0123") || !gen.contains("admin1337") {
		t.Fatalf("expected number-sequence combinations")
	}
}

func TestGenerateCommonAndKeyboard(t *testing.T) {
	gen := newTestGenerator()
	gen.GenerateCommonPasswords()
	gen.GenerateKeyboardPatterns()
	for _, want := range []string{"letmein", "iloveyou", "qwerty", "1qaz2wsx", "asdf", "zxcv"} {
		if !gen.contains(want) {
			t.Fatalf("expected candidate %q", want)
		}
	}
}

func TestMutationsOperateOnSeedsOnly(t *testing.T) {
	gen := newTestGenerator()
	cfg := model.GenerationConfig{
		SeedWords: []string{"admin"},
		UseCommon: true,
		Mutations: model.MutationConfig{LeetSpeak: true},
	}
	if _, err := gen.Generate(cfg); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !gen.contains("@dmin") {
		t.Fatalf("expected leet variant of seed word")
	}
	// "password" entered via the common corpus, not the seeds, so it
	// must not be mutated.
	if gen.contains("p@ssword") {
		t.Fatalf("mutations must not apply to accumulated words")
	}
}

func TestMutationCounterShared(t *testing.T) {
	gen := newTestGenerator()
	gen.ApplyLeetSpeak([]string{"admin"})
	gen.ApplyUppercaseVariations([]string{"admin"})
	gen.ApplySpecialCharacters([]string{"admin"})
	stats, ok := gen.Statistics()
	if !ok {
		t.Fatalf("expected statistics")
	}
	leet := len(pattern.New(pattern.DefaultTables()).LeetVariants("admin"))
	if stats.Mutations != leet+4+16 {
		t.Fatalf("expected shared mutation counter %d, got %d", leet+4+16, stats.Mutations)
	}
}

func TestGenerateFromUsernameFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "usernames.txt")
	if err := os.WriteFile(path, []byte("john.smith\n\nadmin\n"), 0o644); err != nil {
		t.Fatalf("write usernames: %v", err)
	}

	gen := newTestGenerator()
	gen.GenerateFromUsernameFile(path)

	for _, want := range []string{
		"john.smith", "john.smith123", "john.smith@123", "john.smith!", "john.smith2024",
		"johnsmith", "johnsmith123",
		"admin", "admin123", "admin@123", "admin!", "admin2024",
	} {
		if !gen.contains(want) {
			t.Fatalf("expected candidate %q", want)
		}
	}
	// "admin" contains no dots or underscores, so no cleaned form is
	// added beyond the verbatim entry.
	if gen.contains("admin1232024") {
		t.Fatalf("unexpected chained decoration")
	}
}

func TestGenerateFromUsernameFileMissingIsGraceful(t *testing.T) {
	gen := newTestGenerator()
	gen.GenerateFromUsernameFile(filepath.Join(t.TempDir(), "missing.txt"))
	if gen.Len() != 0 {
		t.Fatalf("expected no candidates from missing file")
	}
}

func TestStatisticsEmpty(t *testing.T) {
	gen := newTestGenerator()
	if _, ok := gen.Statistics(); ok {
		t.Fatalf("expected no statistics for empty set")
	}
}

func TestStatisticsValues(t *testing.T) {
	gen := newTestGenerator()
	gen.AddWords([]string{"ab", "abcd", "abcdef"})
	stats, ok := gen.Statistics()
	if !ok {
		t.Fatalf("expected statistics")
	}
	if stats.TotalWords != 3 || stats.UniqueWords != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.MinLength != 2 || stats.MaxLength != 6 {
		t.Fatalf("unexpected lengths: %+v", stats)
	}
	if stats.AvgLength != 4.0 {
		t.Fatalf("unexpected average: %v", stats.AvgLength)
	}
}

func (g *Generator) contains(word string) bool {
	_, ok := g.words[word]
	return ok
}
