package pattern

import (
	"strings"
	"testing"
)

func TestLeetVariantsSingleClass(t *testing.T) {
	gen := newTestGenerator()
	variants := gen.LeetVariants("password")

	for _, want := range []string{"password", "p@ssword", "p4ssword", "pa$$word", "pa55word", "passw0rd"} {
		if !containsString(variants, want) {
			t.Fatalf("expected variants to contain %q, got %v", want, variants)
		}
	}
	// Single-class substitution only: no variant replaces two letter
	// classes at once.
	for _, v := range variants {
		if strings.Contains(v, "@") && strings.Contains(v, "0") {
			t.Fatalf("cross-class variant %q should not be produced", v)
		}
	}
}

func TestLeetVariantsKeepsOriginalCase(t *testing.T) {
	gen := newTestGenerator()
	variants := gen.LeetVariants("Admin")
	if variants[0] != "Admin" {
		t.Fatalf("expected original word first, got %q", variants[0])
	}
	if !containsString(variants, "admin") {
		t.Fatalf("expected lowercase form in variants: %v", variants)
	}
	if !containsString(variants, "@dmin") {
		t.Fatalf("expected @dmin in variants: %v", variants)
	}
	if containsString(variants, "@dmiN") {
		t.Fatalf("substitution must run on the lowercase form: %v", variants)
	}
}

func TestLeetVariantsReplacesAllOccurrences(t *testing.T) {
	gen := newTestGenerator()
	variants := gen.LeetVariants("banana")
	if !containsString(variants, "b@n@n@") {
		t.Fatalf("expected all occurrences replaced: %v", variants)
	}
	if containsString(variants, "b@nana") {
		t.Fatalf("partial replacement should not be produced: %v", variants)
	}
}

func TestLeetVariantsDeduplicated(t *testing.T) {
	gen := newTestGenerator()
	variants := gen.LeetVariants("admin")
	seen := map[string]struct{}{}
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			t.Fatalf("duplicate variant %q", v)
		}
		seen[v] = struct{}{}
	}
}

func TestCaseVariantsShortWord(t *testing.T) {
	gen := newTestGenerator()
	variants := gen.CaseVariants("password")
	expected := []string{"password", "PASSWORD", "Password", "PaSsWoRd"}
	if len(variants) != len(expected) {
		t.Fatalf("expected %d variants, got %v", len(expected), variants)
	}
	for i, want := range expected {
		if variants[i] != want {
			t.Fatalf("expected %q at index %d, got %q", want, i, variants[i])
		}
	}
}

func TestCaseVariantsLongWordSkipsAlternating(t *testing.T) {
	gen := newTestGenerator()
	variants := gen.CaseVariants("administrator")
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants for long word, got %v", variants)
	}
}

func TestSpecialCharVariants(t *testing.T) {
	gen := newTestGenerator()
	variants := gen.SpecialCharVariants("admin")
	if len(variants) != 16 {
		t.Fatalf("expected 16 variants, got %d", len(variants))
	}
	if variants[0] != "admin!" || variants[1] != "!admin" {
		t.Fatalf("unexpected leading variants: %v", variants[:2])
	}
	if !containsString(variants, "admin?") || !containsString(variants, "?admin") {
		t.Fatalf("expected trailing special char variants: %v", variants)
	}
}
