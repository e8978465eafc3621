package scan

import "errors"

var (
	// ErrEmptyLine indicates the input line is empty or all whitespace.
	ErrEmptyLine = errors.New("scan: line must contain at least one syllable")

	// ErrSyllabifier indicates the syllabifier violated its contract:
	// it returned no syllables, or their concatenation does not
	// reproduce the input line.
	ErrSyllabifier = errors.New("scan: syllabifier contract violation")
)
