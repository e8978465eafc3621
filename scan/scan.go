package scan

import (
	"fmt"
	"strings"
)

// ScanLine scans a line of Greek poetry, as far as possible without
// knowing whether ambiguous vowels are long by nature, and returns the
// raw meter: one Symbol per syllable.
//
// Per syllable the natural length is computed first; a naturally long
// vowel can never be shortened by position. Otherwise the positional
// length against the following syllable decides: positional Long wins,
// a natural Short stands, and a natural Unknown takes whatever the
// position can tell (Short or Unknown).
//
// A nil opts selects DefaultOptions. ScanLine returns ErrEmptyLine for
// blank input and ErrSyllabifier when the splitter breaks its contract.
func ScanLine(line string, opts *Options) (RawMeter, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, ErrEmptyLine
	}

	var split Syllabifier
	if opts != nil {
		split = opts.Syllabify
	}
	if split == nil {
		split = DefaultOptions().Syllabify
	}

	sylls := split(line)
	if len(sylls) == 0 {
		return nil, fmt.Errorf("%w: no syllables for %q", ErrSyllabifier, line)
	}
	if joined := strings.Join(sylls, ""); joined != line {
		return nil, fmt.Errorf("%w: syllables %q do not reassemble %q", ErrSyllabifier, joined, line)
	}

	meter := make(RawMeter, 0, len(sylls))
	for i, syl := range sylls {
		length := NaturalLength(syl)
		if length != Long {
			next := "" // line end
			if i < len(sylls)-1 {
				next = sylls[i+1]
			}
			switch pos := PositionalLength(syl, next); {
			case pos == Long:
				length = Long
			case length != Short:
				length = pos
			}
		}
		meter = append(meter, length)
	}

	return meter, nil
}
