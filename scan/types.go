package scan

import "github.com/aconser/greek-scansion/syllabify"

// Symbol is the metrical weight of one syllable, or the still-unresolved
// state of one.
type Symbol byte

const (
	// Long marks a syllable long by nature or by position.
	Long Symbol = 'L'

	// Short marks a syllable short.
	Short Symbol = 'S'

	// Unknown marks a quantity the evidence cannot decide: a bare α, ι
	// or υ, an ambiguous stop+liquid cluster, or a line-final anceps.
	Unknown Symbol = 'X'
)

// String returns the single-letter form of s.
func (s Symbol) String() string { return string(rune(s)) }

// RawMeter is the per-syllable metrical profile of a line, one Symbol
// per syllable. Treat it as immutable once returned.
type RawMeter []Symbol

// String joins the meter into a compact letter string such as "SLSLX".
func (m RawMeter) String() string {
	b := make([]byte, len(m))
	for i, s := range m {
		b[i] = byte(s)
	}

	return string(b)
}

// Syllabifier splits a line of text into an ordered sequence of
// syllables. Implementations must satisfy two contracts: concatenating
// the result reproduces the line byte-for-byte (whitespace and
// punctuation included), and each syllable contains at most one vowel
// nucleus.
type Syllabifier func(line string) []string

// Options configures line scanning.
//
// Fields:
//   - Syllabify — the syllable splitter to drive. Nil selects the
//     built-in syllabify.Line.
type Options struct {
	Syllabify Syllabifier
}

// DefaultOptions returns Options wired to the built-in syllabifier.
func DefaultOptions() Options {
	return Options{Syllabify: syllabify.Line}
}
