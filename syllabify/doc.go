// Package syllabify splits lines of ancient Greek into syllables for
// metrical analysis.
//
// The splitter guarantees exactly the contract the scanner relies on:
//
//   - lossless: concatenating the returned syllables reproduces the
//     input line byte-for-byte, whitespace and punctuation included
//   - one nucleus each: every syllable contains at most one vowel
//     nucleus — a single vowel, or a diphthong pair (a diaeresis on the
//     second vowel splits the pair)
//
// Intervocalic consonants attach to the following syllable. Length
// inference analyzes the whole cluster between two nuclei regardless of
// which side owns it, so the exact split point is immaterial to
// scansion. Word-final codas and trailing separators attach to the
// preceding syllable, which keeps word breaks visible at syllable edges.
//
// ⚙️ Usage:
//
//	sylls := syllabify.Line("ὦ τέκνον")
//	// ["ὦ ", "τέ", "κνον"]
package syllabify
