package syllabify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/aconser/greek-scansion/greek"
)

// Line splits a line of Greek text into syllables. Concatenating the
// result reproduces line exactly; each syllable holds at most one vowel
// nucleus. Separators between words stay attached to the end of the
// preceding syllable, so word breaks remain visible to the scanner.
func Line(line string) []string {
	var sylls []string
	runes := []rune(line)

	i := 0
	for i < len(runes) {
		// Separator run: whitespace and punctuation between words.
		j := i
		for j < len(runes) && !isWordRune(runes[j]) {
			j++
		}
		sep := string(runes[i:j])

		// Word run.
		k := j
		for k < len(runes) && isWordRune(runes[k]) {
			k++
		}
		word := runes[j:k]

		if len(word) == 0 {
			// Trailing separator at line end.
			if sep != "" {
				sylls = attachTail(sylls, sep)
			}
			i = k

			continue
		}

		ws := word2syllables(word)
		if sep != "" {
			if len(sylls) > 0 {
				sylls[len(sylls)-1] += sep
			} else {
				ws[0] = sep + ws[0] // line-leading punctuation
			}
		}
		sylls = append(sylls, ws...)
		i = k
	}

	return sylls
}

// word2syllables splits a single word. Nuclei are single vowels or
// diphthong pairs; every consonant between two nuclei opens the later
// syllable; a vowelless tail closes the last one.
func word2syllables(word []rune) []string {
	var out []string
	var cur []rune
	nucleus := 0 // vowels in the current syllable's nucleus
	var lastVowel rune

	for _, r := range word {
		base := baseRune(r)
		switch {
		case greek.IsVowel(base):
			switch {
			case nucleus == 0:
				cur = append(cur, r)
				nucleus = 1
			case nucleus == 1 && greek.IsDiphthong(lastVowel, base) && !hasDiaeresis(r):
				cur = append(cur, r)
				nucleus = 2
			default:
				out = append(out, string(cur))
				cur = []rune{r}
				nucleus = 1
			}
			lastVowel = base
		case unicode.Is(unicode.Mn, r):
			// Combining mark: stays with the letter it modifies.
			cur = append(cur, r)
		default:
			if nucleus > 0 {
				out = append(out, string(cur))
				cur = []rune{r}
				nucleus = 0
			} else {
				cur = append(cur, r)
			}
		}
	}

	if len(cur) > 0 {
		if nucleus == 0 && len(out) > 0 {
			out[len(out)-1] += string(cur) // word-final coda
		} else {
			out = append(out, string(cur))
		}
	}

	return out
}

// attachTail appends text to the last syllable, or starts one when the
// line has produced none yet.
func attachTail(sylls []string, text string) []string {
	if len(sylls) == 0 {
		return []string{text}
	}
	sylls[len(sylls)-1] += text

	return sylls
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

// baseRune returns the lowercased base character of r with any
// diacritics decomposed away.
func baseRune(r rune) rune {
	base, _ := utf8.DecodeRuneInString(norm.NFD.String(string(r)))

	return unicode.ToLower(base)
}

func hasDiaeresis(r rune) bool {
	return strings.ContainsRune(norm.NFD.String(string(r)), '̈')
}
