package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/wordforge/internal/model"
)

func TestSortedWordsLengthThenLex(t *testing.T) {
	gen := newTestGenerator()
	gen.AddWords([]string{"bb", "a", "ab", "ccc", "b"})
	words := gen.SortedWords()
	expected := []string{"a", "b", "ab", "bb", "ccc"}
	if len(words) != len(expected) {
		t.Fatalf("expected %d words, got %d", len(expected), len(words))
	}
	for i, want := range expected {
		if words[i] != want {
			t.Fatalf("expected %q at index %d, got %q", want, i, words[i])
		}
	}
}

func TestSaveToFileTruncatesAndSorts(t *testing.T) {
	gen := newTestGenerator()
	cfg := model.GenerationConfig{
		SeedWords: []string{"admin"},
		UseDates:  true,
		StartYear: 2023,
		EndYear:   2024,
	}
	if _, err := gen.Generate(cfg); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "wordlist.txt")
	if err := gen.SaveToFile(path, 5); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "admin\nadmin01\nadmin02\nadmin03\nadmin04\n" {
		t.Fatalf("unexpected output: %q", string(data))
	}
}

func TestSaveToFileDeterministic(t *testing.T) {
	gen := newTestGenerator()
	gen.AddWords([]string{"zz", "aa", "mmm", "q", "aab"})

	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := gen.SaveToFile(first, 0); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := gen.SaveToFile(second, 0); err != nil {
		t.Fatalf("second save: %v", err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("read first: %v", err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("read second: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("expected byte-identical output, got %q vs %q", a, b)
	}
}

func TestSaveToFileUnboundedKeepsAll(t *testing.T) {
	gen := newTestGenerator()
	gen.AddWords([]string{"one", "two", "three"})
	path := filepath.Join(t.TempDir(), "all.txt")
	if err := gen.SaveToFile(path, 0); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "one\ntwo\nthree\n" {
		t.Fatalf("unexpected output: %q", string(data))
	}
}

func TestSaveToFileFailureKeepsState(t *testing.T) {
	gen := newTestGenerator()
	gen.AddWords([]string{"alpha", "beta"})

	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocked")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	// A path under a regular file cannot be created.
	if err := gen.SaveToFile(filepath.Join(blocker, "out.txt"), 0); err == nil {
		t.Fatalf("expected save error")
	}
	if gen.Len() != 2 {
		t.Fatalf("expected candidate set preserved, got %d", gen.Len())
	}
}
