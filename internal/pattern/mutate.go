package pattern

import (
	"strings"
	"unicode"
)

// LeetVariants returns the word, its lowercase form, and one variant
// per substitute glyph for every letter class present in the word.
// Substitution replaces all occurrences of a single letter at once;
// classes are never combined, keeping output linear in word length.
// The result is deduplicated and deterministically ordered.
func (g *Generator) LeetVariants(word string) []string {
	lower := strings.ToLower(word)

	var variants []string
	seen := map[string]struct{}{}
	add := func(v string) {
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}

	add(word)
	add(lower)

	for _, subs := range g.tables.LeetMap {
		if !strings.ContainsRune(lower, rune(subs.Letter)) {
			continue
		}
		// Glyphs[0] is the identity mapping and is skipped.
		for _, glyph := range subs.Glyphs[1:] {
			add(strings.ReplaceAll(lower, string(subs.Letter), glyph))
		}
	}
	return variants
}

// CaseVariants returns lowercase, uppercase, and title-case forms.
// An alternating-case form is added only for words of at most 10
// runes; on longer input it adds little realistic coverage.
func (g *Generator) CaseVariants(word string) []string {
	variants := []string{
		strings.ToLower(word),
		strings.ToUpper(word),
		titleCase(word),
	}
	runes := []rune(word)
	if len(runes) <= 10 {
		alternating := make([]rune, len(runes))
		for i, r := range runes {
			if i%2 == 0 {
				alternating[i] = unicode.ToUpper(r)
			} else {
				alternating[i] = unicode.ToLower(r)
			}
		}
		variants = append(variants, string(alternating))
	}
	return variants
}

// SpecialCharVariants returns word+char and char+word for every
// character of the special set, in set order.
func (g *Generator) SpecialCharVariants(word string) []string {
	variants := make([]string, 0, len(g.tables.SpecialChars)*2)
	for _, ch := range g.tables.SpecialChars {
		variants = append(variants, word+ch)
		variants = append(variants, ch+word)
	}
	return variants
}

func titleCase(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
