package trimeter

import (
	"errors"
	"fmt"

	"github.com/aconser/greek-scansion/scan"
)

// ErrNoTrimeter indicates that neither scanning pass could partition the
// raw meter into three legal iambic metra.
var ErrNoTrimeter = errors.New("trimeter: no valid three-metron partition")

// FailureReport is the structured diagnostic for an unscannable line:
// the original text (when scanning started from text) and the raw meter
// that resisted partitioning. It unwraps to ErrNoTrimeter.
type FailureReport struct {
	Line     string
	RawMeter scan.RawMeter
}

// Error implements the error interface.
func (f *FailureReport) Error() string {
	if f.Line == "" {
		return fmt.Sprintf("trimeter: failed to scan raw meter %s", f.RawMeter)
	}

	return fmt.Sprintf("trimeter: failed to scan line %q (raw meter %s)", f.Line, f.RawMeter)
}

// Unwrap lets errors.Is(err, ErrNoTrimeter) see through the report.
func (f *FailureReport) Unwrap() error { return ErrNoTrimeter }
