package trimeter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aconser/greek-scansion/trimeter"
)

// TestIsMetron_Plain covers the unresolved shapes: anceps-long-short-long
// in its L/S/X spellings.
func TestIsMetron_Plain(t *testing.T) {
	for _, m := range []string{"SLSL", "LLSL", "XLSL", "XXXX", "LXSL", "SLXL"} {
		assert.True(t, trimeter.IsMetron(m, false), "%s must be a metron", m)
		assert.True(t, trimeter.IsMetron(m, true), "%s must also fit the final grammar", m)
	}
}

// TestIsMetron_Resolved exercises resolution: a long position realized
// as two shorts gives 5- and 6-symbol metra.
func TestIsMetron_Resolved(t *testing.T) {
	assert.True(t, trimeter.IsMetron("SSSSL", false), "anapest: resolved anceps")
	assert.True(t, trimeter.IsMetron("SLSSS", false), "resolved final long")
	assert.True(t, trimeter.IsMetron("LSSSL", false), "dactyl")
	assert.True(t, trimeter.IsMetron("SSLSL", false))
	assert.True(t, trimeter.IsMetron("SSSSSS", false), "double resolution")
}

// TestIsMetron_Rejects: shapes the grammar must refuse.
func TestIsMetron_Rejects(t *testing.T) {
	assert.False(t, trimeter.IsMetron("LSLS", false), "trochaic shape")
	assert.False(t, trimeter.IsMetron("SSLS", true), "short where the long position sits")
	assert.False(t, trimeter.IsMetron("SLS", false), "too short")
	assert.False(t, trimeter.IsMetron("SLSLSLS", false), "seven symbols never fit")
	assert.False(t, trimeter.IsMetron("", false))
	assert.False(t, trimeter.IsMetron("SLSLL", false), "trailing symbol left over")
}

// TestIsMetron_FinalAnceps: only the final grammar admits a lone short
// in the last position, and neither admits a resolved pair there.
func TestIsMetron_FinalAnceps(t *testing.T) {
	assert.True(t, trimeter.IsMetron("SLSS", true))
	assert.False(t, trimeter.IsMetron("SLSS", false), "non-final metron may not end short")
	assert.True(t, trimeter.IsMetron("SLSSS", false), "resolved pair in the close is non-final only")
	assert.False(t, trimeter.IsMetron("SLSSS", true))
}

// TestFillMetron_FourAndSix: lengths 4 and 6 admit exactly one
// realization; the initial anceps is kept as observed.
func TestFillMetron_FourAndSix(t *testing.T) {
	assert.Equal(t, "XLSL", trimeter.FillMetron("XLSL", false))
	assert.Equal(t, "XLSL", trimeter.FillMetron("XXXX", false), "middle positions forced")
	assert.Equal(t, "SLSL", trimeter.FillMetron("SXXX", true))
	assert.Equal(t, "XSSSSS", trimeter.FillMetron("XSSSSS", false))
	assert.Equal(t, "LSSSSS", trimeter.FillMetron("LXXXXX", false))
}

// TestFillMetron_Five: 5-symbol metra resolve against the ranked list,
// first match winning.
func TestFillMetron_Five(t *testing.T) {
	assert.Equal(t, "SSSSL", trimeter.FillMetron("SSSSL", false), "fully specified input is its own match")
	assert.Equal(t, "SSSSL", trimeter.FillMetron("XSSSL", false))
	assert.Equal(t, "SSSSL", trimeter.FillMetron("SSXSL", false), "SSSSL outranks SSLSL")
	assert.Equal(t, "SSSSL", trimeter.FillMetron("XXXSL", false))
	assert.Equal(t, "LSSSL", trimeter.FillMetron("LSXSX", false), "dactyl is the only fit")
}

// TestFillMetron_FinalRestore: a final metron whose observed close was X
// may not overcommit — the fill reverts it unless the realization ends
// in three shorts.
func TestFillMetron_FinalRestore(t *testing.T) {
	assert.Equal(t, "SSSSX", trimeter.FillMetron("SSSSX", true), "guessed close reverts to X")
	assert.Equal(t, "SLSSS", trimeter.FillMetron("SLSSX", true), "triple-short close keeps the fill")
	assert.Equal(t, "SSSSL", trimeter.FillMetron("SSSSX", false), "non-final metron commits")
}

// TestFillMetron_NoRealization: a grammatical final metron outside the
// realization list comes back unchanged instead of failing.
func TestFillMetron_NoRealization(t *testing.T) {
	assert.Equal(t, "LSXSS", trimeter.FillMetron("LSXSS", true))
}
