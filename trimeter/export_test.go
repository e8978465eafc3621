package trimeter

// Test-only exports of internal helpers, so white-box cases can pin the
// filler and each assembly pass without widening the public API.
var (
	FillMetron      = fillMetron
	AssembleReverse = assembleReverse
	AssembleForward = assembleForward
)
