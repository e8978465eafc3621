package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestScanOne_Success checks the output record format for a line that
// scans cleanly.
func TestScanOne_Success(t *testing.T) {
	logger = zap.NewNop()
	meterOnly = false

	rec := scanOne("λόγος μέν ἐστ’ ἀρχαῖος ἀνθρώπων φανείς")
	assert.Equal(t, "SLSLLLSLLLSL\tλόγος μέν ἐστ’ ἀρχαῖος ἀνθρώπων φανείς", rec)
}

// TestScanOne_MeterOnly prints the raw meter without trimeter fitting.
func TestScanOne_MeterOnly(t *testing.T) {
	logger = zap.NewNop()
	meterOnly = true
	defer func() { meterOnly = false }()

	rec := scanOne("ὦ τέκνον, ἦ πάρει;")
	assert.Equal(t, "LSSLSL\tὦ τέκνον, ἦ πάρει;", rec)
}

// TestScanOne_Failure marks unscannable lines instead of erroring.
func TestScanOne_Failure(t *testing.T) {
	logger = zap.NewNop()
	meterOnly = false

	rec := scanOne("ὦ τέκνον, ἦ πάρει;")
	assert.Equal(t, "FAILED\tὦ τέκνον, ἦ πάρει;", rec)
	assert.Empty(t, scanOne("   "), "blank lines produce no record")
}

// TestReadLines_Stdin reads from the fallback reader when no files are
// named.
func TestReadLines_Stdin(t *testing.T) {
	lines, err := readLines(strings.NewReader("one\ntwo\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, lines)
}
