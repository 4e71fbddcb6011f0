// Package conv provides safe integer conversion helpers used when sizing
// the sparse.Set scratch structure that backs ε-closure during subset
// construction, where state counts are bounded by
// automaton.MaxNFAStates/MaxDFAStates but arrive as plain ints.
package conv

import "math"

// IntToUint32 safely converts an int to uint32. Panics if n < 0 or
// n > math.MaxUint32 — this indicates a programming error (a state
// count that escaped the compile-time bounds check), not a user input
// error, since every caller validates against automaton.MaxNFAStates /
// automaton.MaxDFAStates first.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
