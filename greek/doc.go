// Package greek provides the character-level building blocks for metrical
// analysis: classification of Greek letters and diacritics, plus the two
// normalized views of a syllable that the scanner works with.
//
// 🚀 What does greek do?
//
//	Pure, stateless predicates over runes and short strings:
//	  • vowels, long vowels (η ω), short vowels (ε ο)
//	  • diphthongs (αι ει οι υι αυ ευ ου ηυ), matched as substrings
//	  • consonants, including all three sigmas (σ ς ϲ)
//	  • double consonants (ζ ξ ψ), phonetically two-consonant clusters
//	  • the 27 "mute + liquid/nasal" clusters whose positional length
//	    is ambiguous in tragedy
//	  • length diacritics: circumflex, macron, caret and iota subscript
//	    mark a vowel long; the breve marks it short
//
// Two normalizers derive the views downstream code needs:
//
//	StripDiacritics — base letters only, lowercased (vowel identity)
//	Alnum           — letters and digits only, lowercased (cluster scans)
//
// Decompose exposes the NFD form so length diacritics survive as
// separate combining marks.
//
// All tables are immutable after package initialization; every function
// is safe for concurrent use.
package greek
