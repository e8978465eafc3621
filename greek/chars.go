package greek

import "strings"

// Character tables. Conventions follow the practice of tragedy; see the
// package documentation for the linguistic background. All tables are
// populated once at init and never mutated.
var (
	vowels = runeSet("αεηιουω")

	longVowels = runeSet("ηω")

	shortVowels = runeSet("εο")

	// Diphthongs are matched on the diacritic-stripped form as substrings:
	// a diphthong buried in a larger vowel cluster still counts.
	diphthongs = []string{"αι", "ει", "οι", "υι", "αυ", "ευ", "ου", "ηυ"}

	// All 19 consonant letters, with lunate, medial and final sigma.
	consonants = runeSet("βγδζθκλμνξπρϲσςτφχψ")

	// ζ, ξ and ψ are each phonetically a two-consonant cluster.
	doubleConsonants = runeSet("ζξψ")

	// Voiceless stop + liquid/nasal, plus voiced stop + rho. These
	// clusters may scan long or short as the verse requires. Stop+liquid
	// pairs that almost universally lengthen (γμ, γν, δμ, δν, βλ, γλ)
	// are deliberately absent: they fall through to the ordinary
	// two-consonant rule.
	muteLiquids = map[string]bool{
		"θλ": true, "θρ": true, "θμ": true, "θν": true,
		"κλ": true, "κρ": true, "κμ": true, "κν": true,
		"πλ": true, "πρ": true, "πν": true, "πμ": true,
		"τλ": true, "τρ": true, "τν": true, "τμ": true,
		"φλ": true, "φρ": true, "φν": true, "φμ": true,
		"χλ": true, "χρ": true, "χν": true, "χμ": true,
		"βρ": true, "γρ": true, "δρ": true,
	}

	// Diacritics that mark a vowel long, searched in the NFD-decomposed
	// form of a syllable.
	longMarks = runeSet("̂" + // combining circumflex
		"̄" + // combining macron
		"ˆ" + // spacing circumflex
		"^" + // caret
		"ͅ" + // combining iota subscript
		"ͺ") // spacing iota subscript

	// The sole diacritic that marks a vowel short.
	shortMark = '̆' // combining breve
)

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}

	return set
}

// IsVowel reports whether r is one of the seven Greek vowel letters.
// The rune must already be stripped of diacritics (see StripDiacritics).
func IsVowel(r rune) bool { return vowels[r] }

// IsLongVowel reports whether r is long by nature (η or ω).
func IsLongVowel(r rune) bool { return longVowels[r] }

// IsShortVowel reports whether r is short by nature (ε or ο).
func IsShortVowel(r rune) bool { return shortVowels[r] }

// IsConsonant reports whether r is a Greek consonant letter.
func IsConsonant(r rune) bool { return consonants[r] }

// IsDoubleConsonant reports whether r is ζ, ξ or ψ, each of which
// behaves as a two-consonant cluster for positional length.
func IsDoubleConsonant(r rune) bool { return doubleConsonants[r] }

// IsDiphthong reports whether the two runes form one of the eight
// classical diphthongs.
func IsDiphthong(first, second rune) bool {
	return diphthongPairs[[2]rune{first, second}]
}

var diphthongPairs = func() map[[2]rune]bool {
	set := make(map[[2]rune]bool, len(diphthongs))
	for _, d := range diphthongs {
		rs := []rune(d)
		set[[2]rune{rs[0], rs[1]}] = true
	}

	return set
}()

// IsMuteLiquid reports whether cluster is exactly one of the ambiguous
// stop + liquid/nasal digraphs. Longer clusters never qualify.
func IsMuteLiquid(cluster string) bool { return muteLiquids[cluster] }

// HasVowel reports whether the diacritic-stripped string s contains any
// vowel letter.
func HasVowel(s string) bool { return hasRuneIn(s, vowels) }

// HasLongVowel reports whether the diacritic-stripped string s contains
// η or ω.
func HasLongVowel(s string) bool { return hasRuneIn(s, longVowels) }

// HasShortVowel reports whether the diacritic-stripped string s contains
// ε or ο.
func HasShortVowel(s string) bool { return hasRuneIn(s, shortVowels) }

// HasDiphthong reports whether the diacritic-stripped string s contains
// a diphthong as a substring.
func HasDiphthong(s string) bool {
	for _, d := range diphthongs {
		if strings.Contains(s, d) {
			return true
		}
	}

	return false
}

// HasLongMark reports whether the NFD-decomposed string s carries any
// diacritic that marks a vowel long.
func HasLongMark(s string) bool { return hasRuneIn(s, longMarks) }

// HasShortMark reports whether the NFD-decomposed string s carries the
// combining breve.
func HasShortMark(s string) bool { return strings.ContainsRune(s, shortMark) }

func hasRuneIn(s string, set map[rune]bool) bool {
	for _, r := range s {
		if set[r] {
			return true
		}
	}

	return false
}
