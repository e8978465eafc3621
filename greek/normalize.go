package greek

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ElisionApostrophe marks apocope (loss of a final vowel) in edited
// texts. It is a letter to Unicode, so Alnum removes it explicitly.
const ElisionApostrophe = 'ʼ'

// StripDiacritics removes diacritical marks from s and lowercases it.
// Each rune is canonically decomposed and only its base character kept,
// so ᾷ becomes α and ὸ becomes ο.
func StripDiacritics(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		base, _ := utf8.DecodeRuneInString(norm.NFD.String(string(r)))
		b.WriteRune(unicode.ToLower(base))
	}

	return b.String()
}

// Decompose returns the canonical (NFD) decomposition of s, with
// combining marks split out as separate runes. Length diacritics are
// searched for in this view.
func Decompose(s string) string { return norm.NFD.String(s) }

// Alnum removes everything except letters and digits from s, including
// the elision apostrophe, and lowercases the result. Applied before
// consonant-cluster extraction so punctuation at syllable edges never
// pollutes cluster matching.
func Alnum(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == ElisionApostrophe {
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
