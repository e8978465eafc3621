package scan

import (
	"unicode"
	"unicode/utf8"

	"github.com/aconser/greek-scansion/greek"
)

// NaturalLength returns the length of syl as determined by vowel quality
// alone. Rules are tried in strict priority order; the first match wins:
//
//  1. contains η or ω                     → Long
//  2. contains a diphthong                → Long
//  3. carries a long diacritic (NFD view) → Long
//  4. contains ε or ο                     → Short
//  5. carries a breve (NFD view)          → Short
//  6. otherwise (bare α, ι or υ)          → Unknown
func NaturalLength(syl string) Symbol {
	bare := greek.StripDiacritics(syl)
	marks := greek.Decompose(syl)
	switch {
	case greek.HasLongVowel(bare):
		return Long
	case greek.HasDiphthong(bare):
		return Long
	case greek.HasLongMark(marks):
		return Long
	case greek.HasShortVowel(bare):
		return Short
	case greek.HasShortMark(marks):
		return Short
	default:
		return Unknown
	}
}

// PositionalLength returns the length of syl as determined by the
// consonant cluster separating its vowel nucleus from that of next.
// An empty next marks the line-final syllable.
//
// Classification of the cluster (trailing consonants of syl plus leading
// consonants of next, after both are reduced by greek.Alnum):
//
//   - at most one consonant → Short, unless it is ζ, ξ or ψ → Long
//   - an ambiguous stop+liquid digraph → Short when a word break
//     precedes it and syl ends in a vowel; otherwise Unknown
//   - any other cluster of two or more → Long
//
// A line-final Short is remapped to Unknown: the last syllable of a line
// may always be treated as long (final anceps), so a position-based
// Short must not be asserted there.
func PositionalLength(syl, next string) Symbol {
	lineEnd := next == ""

	// A word break is visible in the raw, unnormalized boundary
	// characters before punctuation is stripped away.
	wordbreak := false
	if !lineEnd {
		last, _ := utf8.DecodeLastRuneInString(syl)
		first, _ := utf8.DecodeRuneInString(next)
		wordbreak = unicode.IsSpace(last) || unicode.IsSpace(first)
	}

	a := greek.Alnum(syl)
	b := greek.Alnum(next)
	cluster := boundaryCluster(a, b)

	var status Symbol
	switch {
	case len(cluster) <= 1:
		status = Short
		if len(cluster) == 1 && greek.IsDoubleConsonant(cluster[0]) {
			status = Long
		}
	case greek.IsMuteLiquid(string(cluster)):
		if wordbreak && endsInVowel(a) {
			status = Short
		} else {
			status = Unknown
		}
	default:
		status = Long
	}

	if lineEnd && status == Short {
		status = Unknown
	}

	return status
}

// boundaryCluster collects the consonants separating the vowel nuclei of
// two adjacent syllables: the trailing consonant run of a, then the
// leading consonant run of b.
func boundaryCluster(a, b string) []rune {
	var cluster []rune

	ra := []rune(a)
	for i := len(ra) - 1; i >= 0; i-- {
		if !greek.IsConsonant(ra[i]) {
			break
		}
		cluster = append([]rune{ra[i]}, cluster...)
	}

	for _, r := range b {
		if !greek.IsConsonant(r) {
			break
		}
		cluster = append(cluster, r)
	}

	return cluster
}

func endsInVowel(s string) bool {
	last, _ := utf8.DecodeLastRuneInString(s)

	return greek.IsVowel(last)
}
