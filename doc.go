// Package scansion is a toolkit for the metrical analysis of ancient
// Greek verse — from per-syllable length inference to full iambic
// trimeter scansion.
//
// 🚀 What is greek-scansion?
//
//	A small, pure library that takes a line of Greek poetry and works out,
//	for every syllable, whether it is metrically long (L), short (S) or
//	undetermined (X), then fits the result against the legal realizations
//	of the iambic trimeter:
//	  • Vowel-quality rules: η/ω, diphthongs and length diacritics
//	  • Positional rules: consonant clusters, double consonants,
//	    stop + liquid ambiguity, word breaks, final anceps
//	  • Pattern fitting: a two-pass (back-to-front, then front-to-back)
//	    partition of the raw meter into three iambic metra
//
// ✨ Why choose greek-scansion?
//
//   - Honest about ambiguity – unknown quantities are first-class values,
//     never guessed away
//   - Rock-solid failure model – an unscannable line is a structured
//     result, not a panic
//   - Pure Go core – every function is deterministic over immutable
//     inputs; scanning lines in parallel needs no coordination
//   - Pluggable – bring your own syllabifier, or use the built-in one
//
// Everything is organized under four subpackages:
//
//	greek/     — character classes and diacritic-aware normalization
//	scan/      — per-syllable length inference and the line scanner
//	trimeter/  — iambic metron grammar, filling and line assembly
//	syllabify/ — the default syllable splitter (replaceable)
//
// Quick example:
//
//	raw, _ := scan.ScanLine("σοφὸς γὰρ οὐδεὶς πλὴν ὃν ἂν τιμᾷ θεός", nil)
//	out, err := trimeter.Scan("σοφὸς γὰρ οὐδεὶς πλὴν ὃν ἂν τιμᾷ θεός", nil)
//
// See each subpackage's doc.go for details and worked examples.
package scansion
