package trimeter

import "strings"

// Position alternatives of the iambic metron grammar, in the order they
// are tried. Matching is literal over {L, S, X}: an X in a candidate
// matches only an X in an alternative.
var (
	ancepsPos = []string{"SS", "L", "S", "X", "SX", "XS"}
	longPos   = []string{"SS", "L", "X", "SX", "XS"}
	shortPos  = []string{"S", "X"}
	closePos  = []string{"SS", "L", "X", "XS", "SX"}
	finalPos  = []string{"L", "S", "X"}
)

// IsMetron reports whether candidate, a string over {L, S, X}, could be
// a complete iambic metron. The match is anchored: the four positions
// must consume the candidate exactly. The final metron of a line admits
// any single symbol in its last position (final anceps) but no resolved
// pair there.
func IsMetron(candidate string, final bool) bool {
	positions := [][]string{ancepsPos, longPos, shortPos, closePos}
	if final {
		positions[3] = finalPos
	}

	return matchPositions(candidate, positions)
}

// matchPositions consumes s position by position, backtracking across
// alternatives, and succeeds only on full consumption.
func matchPositions(s string, positions [][]string) bool {
	if len(positions) == 0 {
		return s == ""
	}
	for _, alt := range positions[0] {
		if strings.HasPrefix(s, alt) && matchPositions(s[len(alt):], positions[1:]) {
			return true
		}
	}

	return false
}
