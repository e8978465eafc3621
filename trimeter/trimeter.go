package trimeter

import (
	"errors"
	"strings"

	"github.com/aconser/greek-scansion/scan"
)

// Scan scans a line of iambic trimeter and returns its scansion as a
// string of metrical lengths: 'L' (long), 'S' (short) or 'X' (unknown),
// three resolved metra concatenated. A nil opts selects the default
// syllabifier (see scan.DefaultOptions).
//
// When neither scanning pass can partition the line, Scan returns a
// *FailureReport carrying the line and its raw meter; treat it as an
// expected outcome, not a fault. Input errors from scan.ScanLine pass
// through unchanged.
func Scan(line string, opts *scan.Options) (string, error) {
	raw, err := scan.ScanLine(line, opts)
	if err != nil {
		return "", err
	}

	out, err := ScanMeter(raw)
	if err != nil {
		var fr *FailureReport
		if errors.As(err, &fr) {
			fr.Line = strings.TrimSpace(line)
		}

		return "", err
	}

	return out, nil
}

// ScanMeter partitions a precomputed raw meter into three iambic metra
// and returns the filled scansion. The primary pass works back to
// front; if it cannot produce exactly three metra consuming the whole
// meter, a front-to-back pass retries. Failure of both is reported as a
// *FailureReport.
func ScanMeter(raw scan.RawMeter) (string, error) {
	if metra, ok := assembleReverse(raw); ok {
		return strings.Join(metra, ""), nil
	}
	if metra, ok := assembleForward(raw); ok {
		return strings.Join(metra, ""), nil
	}

	return "", &FailureReport{RawMeter: raw}
}

// assembleReverse is the primary pass: symbols are prepended to the
// growing candidate from line end backward, so the first metron formed
// is the line-final one. The metron list is returned in front-to-back
// order.
func assembleReverse(raw scan.RawMeter) ([]string, bool) {
	var metra []string
	var current string
	final := true

	for i := len(raw) - 1; i >= 0; i-- {
		current = raw[i].String() + current
		if len(current) < 4 {
			continue
		}
		leftover := i // symbols before the candidate, still unconsumed
		if IsMetron(current, final) && (leftover == 0 || leftover >= 4) {
			metra = append([]string{fillMetron(current, final)}, metra...)
			current = ""
			final = false
		}
	}

	return metra, len(metra) == 3 && current == ""
}

// assembleForward is the fallback pass: front to back, with the final
// grammar applied only once the candidate reaches the last symbol. Less
// effective overall, but catches a few lines the primary pass cannot.
func assembleForward(raw scan.RawMeter) ([]string, bool) {
	var metra []string
	var current string

	for i := 0; i < len(raw); i++ {
		current += raw[i].String()
		if len(current) < 4 {
			continue
		}
		leftover := len(raw) - 1 - i
		final := leftover == 0
		if IsMetron(current, final) && (leftover == 0 || leftover >= 4) {
			metra = append(metra, fillMetron(current, final))
			current = ""
		}
	}

	return metra, len(metra) == 3 && current == ""
}
