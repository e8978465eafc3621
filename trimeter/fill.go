package trimeter

import "strings"

// The four real 5-symbol realizations of an iambic metron, ordered by
// likelihood. When an observed metron with unknowns matches several,
// the first wins.
var resolvedMetra = []string{
	"SSSSL", // first resolution
	"SLSSS", // second resolution
	"LSSSL", // first dactyl
	"SSLSL", // first anapest
}

// fillMetron resolves the unknown symbols of a matched metron to the
// extent context allows. An initial anceps stays as observed. Metra of
// 4 or 6 symbols admit a single realization; 5-symbol metra are matched
// against resolvedMetra with each observed X acting as a wildcard.
//
// For a final metron whose observed last symbol was X, the fill is not
// allowed to overcommit: unless the chosen realization ends in three
// shorts, the last symbol reverts to X (final anceps).
func fillMetron(metron string, final bool) string {
	switch len(metron) {
	case 4:
		return metron[:1] + "LSL"
	case 6:
		return metron[:1] + "SSSSS"
	case 5:
		for _, candidate := range resolvedMetra {
			if !wildcardEqual(metron, candidate) {
				continue
			}
			if final && metron[len(metron)-1] == 'X' && !strings.HasSuffix(candidate, "SSS") {
				return candidate[:len(candidate)-1] + "X"
			}

			return candidate
		}
	}

	// A metron the realization list cannot name stays as observed;
	// filling is total over matched metra.
	return metron
}

// wildcardEqual reports whether s matches pattern, where each X in
// pattern matches any symbol of s.
func wildcardEqual(pattern, s string) bool {
	if len(pattern) != len(s) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != 'X' && pattern[i] != s[i] {
			return false
		}
	}

	return true
}
