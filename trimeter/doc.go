// Package trimeter fits a raw meter against the legal realizations of
// the iambic trimeter and resolves remaining unknown quantities where
// the grammar permits only one reading.
//
// 🚀 How the fit works
//
//	An iambic metron is anceps–long–short–long, where a long position may
//	be resolved into two shorts. Over the symbols {L, S, X} that gives a
//	small anchored grammar of four positions:
//	  p1 anceps        SS | L | S | X | SX | XS
//	  p2 long          SS | L | X | SX | XS
//	  p3 short         S | X
//	  p4 long          SS | L | X | XS | SX   (final metron: L | S | X)
//
//	Scan partitions the raw meter into exactly three such metra:
//	  1. Primary pass — back to front, so the first metron formed is the
//	     line-final one and benefits from the stricter final grammar.
//	  2. Fallback pass — front to back, for the few lines the primary
//	     pass cannot split.
//	A matched metron is accepted only if the symbols it would leave
//	behind still amount to zero or at least one whole metron; anything
//	in between would strand them.
//
//	Matched metra of 4 or 6 symbols resolve to a single realization;
//	5-symbol metra are disambiguated against a ranked list of the four
//	real realizations, first match winning. A line-final X survives
//	filling unless the grammar forces it (final anceps).
//
// ⚙️ Usage:
//
//	out, err := trimeter.Scan(line, nil)
//	if err != nil {
//	  var fr *trimeter.FailureReport
//	  if errors.As(err, &fr) {
//	    // fr.Line and fr.RawMeter carry the diagnostic
//	  }
//	}
//	fmt.Println(out) // e.g. "XLSLSLSLSLSL"
//
// An unscannable line is an expected outcome, reported as a
// *FailureReport wrapping ErrNoTrimeter — never a panic and never a
// print statement.
package trimeter
