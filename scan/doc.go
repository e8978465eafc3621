// Package scan infers the metrical length of each syllable in a line of
// ancient Greek and produces its raw meter.
//
// 🚀 What is a raw meter?
//
//	One Symbol per syllable — Long ('L'), Short ('S') or Unknown ('X') —
//	combining two independent sources of evidence:
//	  • NaturalLength: vowel quality. η/ω, diphthongs or a long diacritic
//	    make a syllable long; ε/ο or a breve make it short; a bare α, ι
//	    or υ stays unknown.
//	  • PositionalLength: the consonant cluster separating a syllable's
//	    nucleus from the next. A single consonant leaves it short (unless
//	    ζ/ξ/ψ); two or more lengthen it, except the ambiguous
//	    stop + liquid clusters; the line-final syllable is never asserted
//	    short (final anceps).
//
// Combination rule per syllable (first branch that applies wins):
//
//  1. naturally long         → Long, positional evidence is ignored
//  2. positionally long      → Long, a closed syllable overrides nature
//  3. naturally short        → Short
//  4. otherwise              → the positional result (Short or Unknown)
//
// ⚙️ Usage:
//
//	raw, err := scan.ScanLine("ὦ τέκνον, ἦ πάρει;", nil)
//	if err != nil { ... }
//	fmt.Println(raw) // e.g. LSSLSL
//
// By default lines are split with the syllabify package; supply your own
// splitter through Options to integrate a different syllabifier:
//
//	opts := scan.DefaultOptions()
//	opts.Syllabify = mySplitter
//	raw, err := scan.ScanLine(line, &opts)
//
// Every function is pure and safe for concurrent use; Unknown symbols in
// the result are values, not errors.
package scan
