package trimeter_test

import (
	"testing"

	"github.com/aconser/greek-scansion/trimeter"
)

// BenchmarkScan measures the full pipeline: syllabification, length
// inference and two-pass assembly of one tragic line.
func BenchmarkScan(b *testing.B) {
	const line = "λόγος μέν ἐστ’ ἀρχαῖος ἀνθρώπων φανείς"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := trimeter.Scan(line, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkScanMeter isolates the partition and fill stages on a
// precomputed raw meter.
func BenchmarkScanMeter(b *testing.B) {
	raw := meter("SLSSSLLSLLLSL")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := trimeter.ScanMeter(raw); err != nil {
			b.Fatal(err)
		}
	}
}
