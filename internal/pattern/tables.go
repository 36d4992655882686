// Package pattern produces candidate strings for password-construction
// habits: dates, number runs, keyboard walks, leet-speak, case and
// special-character mutations.
package pattern

// LeetSubstitutes lists the replacement glyphs for one letter.
// Glyphs[0] is always the letter itself; substitution starts at
// index 1 so only actual variants are produced.
type LeetSubstitutes struct {
	Letter byte
	Glyphs []string
}

// Tables holds the static lookup data the generator draws from. A
// Tables value is immutable once built; DefaultTables returns the
// stock corpus.
type Tables struct {
	LeetMap         []LeetSubstitutes
	CommonPasswords []string
	KeyboardCorpus  []string
	KeyboardRows    []string
	KeyboardWalks   []string
	SpecialChars    []string
	CommonSuffixes  []string
	NotableNumbers  []string
}

// DefaultTables returns the built-in lookup tables.
func DefaultTables() Tables {
	return Tables{
		LeetMap: []LeetSubstitutes{
			{Letter: 'a', Glyphs: []string{"a", "@", "4"}},
			{Letter: 'e', Glyphs: []string{"e", "3"}},
			{Letter: 'i', Glyphs: []string{"i", "1", "!"}},
			{Letter: 'o', Glyphs: []string{"o", "0"}},
			{Letter: 's', Glyphs: []string{"s", "$", "5"}},
			{Letter: 't', Glyphs: []string{"t", "7"}},
			{Letter: 'l', Glyphs: []string{"l", "1"}},
			{Letter: 'g', Glyphs: []string{"g", "9"}},
			{Letter: 'b', Glyphs: []string{"b", "8"}},
		},
		CommonPasswords: []string{
			"password", "123456", "password123", "admin", "letmein",
			"welcome", "monkey", "dragon", "master", "sunshine",
			"princess", "qwerty", "abc123", "111111", "iloveyou",
			"admin123", "password1", "12345678", "123456789", "1234567890",
		},
		KeyboardCorpus: []string{
			"qwerty", "qwertyuiop", "asdfgh", "asdfghjkl", "zxcvbn",
			"1qaz2wsx", "qazwsx", "123qwe", "1q2w3e4r", "qweasd",
			"!qaz@wsx", "1234", "12345", "123456", "1234567", "12345678",
		},
		KeyboardRows: []string{
			"qwertyuiop",
			"asdfghjkl",
			"zxcvbnm",
		},
		KeyboardWalks: []string{
			"1qaz2wsx",
			"qazwsx",
			"!qaz@wsx",
			"1q2w3e4r",
			"qweasd",
			"123qwe",
		},
		SpecialChars: []string{"!", "@", "#", "$", "%", "&", "*", "?"},
		CommonSuffixes: []string{
			"1", "12", "123", "1234", "12345", "123456",
			"0", "00", "000",
			"01", "001", "0001",
			"!", "!!", "!!!",
			"@", "@@",
		},
		NotableNumbers: []string{
			"007", "69", "420", "666", "777", "888", "999",
			"000", "101", "143", "1337",
		},
	}
}
