// Package automaton holds the data model every other package in this module
// shares: the alphabet, the Thompson ε-NFA, the completed DFA, and the
// canonical on-disk table format that ties the three CLI components
// together. Nothing here depends on regexcompile, dfaspec, or checker —
// it is the leaf of the dependency graph.
package automaton

import "fmt"

// MaxAlphabetSize is the hard cap on distinct symbols, per spec §3.
const MaxAlphabetSize = 128

// EpsilonMarker is the internal byte used to mark an ε-edge in a regex
// token stream. It is chosen from the reserved control range (< 0x20) so
// it can never collide with a legal alphabet symbol (alphabet bytes must
// be >= 32) or with the ConcatMarker below.
const EpsilonMarker byte = 0x01

// ConcatMarker is the internal byte inserted between adjacent atoms during
// explicit-concatenation insertion (regexcompile's shunting-yard pass). It
// is never emitted, only used as an operator token during postfix
// conversion.
const ConcatMarker byte = 0x02

// isRegexMeta reports whether b is one of the regex meta-characters that
// may never appear in an alphabet: | + * ( ) .
func isRegexMeta(b byte) bool {
	switch b {
	case '|', '+', '*', '(', ')', '.':
		return true
	}
	return false
}

// isDFASpecMeta reports whether b is one of the DFA-spec meta-characters
// that may never appear in an alphabet: { } , - > :
func isDFASpecMeta(b byte) bool {
	switch b {
	case '{', '}', ',', '-', '>', ':':
		return true
	}
	return false
}

// Alphabet is an ordered sequence of distinct single-byte symbols. Order
// is significant: it indexes every transition-table column.
type Alphabet struct {
	symbols []byte
	index   map[byte]int
}

// NewAlphabet validates bytes per spec §3 and builds an Alphabet, keeping
// the kept bytes in first-seen order. It rejects: empty input, more than
// MaxAlphabetSize symbols, any byte < 32, any regex or DFA-spec
// meta-character, the reserved epsilon/concat markers, and duplicates.
func NewAlphabet(bytes []byte) (Alphabet, error) {
	if len(bytes) == 0 {
		return Alphabet{}, &Diagnostic{Kind: KindInputFormat, Message: "alphabet is empty"}
	}

	seen := make(map[byte]bool, len(bytes))
	symbols := make([]byte, 0, len(bytes))
	for _, b := range bytes {
		if b < 32 {
			return Alphabet{}, &Diagnostic{Kind: KindInputFormat,
				Message: fmt.Sprintf("alphabet contains control byte 0x%02x", b)}
		}
		if isRegexMeta(b) || isDFASpecMeta(b) || b == EpsilonMarker || b == ConcatMarker {
			return Alphabet{}, &Diagnostic{Kind: KindInputFormat,
				Message: fmt.Sprintf("alphabet contains reserved character %q", string(b))}
		}
		if seen[b] {
			return Alphabet{}, &Diagnostic{Kind: KindInputFormat,
				Message: fmt.Sprintf("duplicate alphabet symbol %q", string(b))}
		}
		seen[b] = true
		symbols = append(symbols, b)
	}
	if len(symbols) > MaxAlphabetSize {
		return Alphabet{}, &Diagnostic{Kind: KindResource,
			Message: fmt.Sprintf("alphabet has %d symbols, exceeds limit of %d", len(symbols), MaxAlphabetSize)}
	}

	idx := make(map[byte]int, len(symbols))
	for i, b := range symbols {
		idx[b] = i
	}
	return Alphabet{symbols: symbols, index: idx}, nil
}

// Len returns the number of symbols, k.
func (a Alphabet) Len() int { return len(a.symbols) }

// Bytes returns the alphabet's symbols in order. The returned slice must
// not be mutated by the caller.
func (a Alphabet) Bytes() []byte { return a.symbols }

// String returns the alphabet as a concatenated byte string, the form
// written into the ALPHABET line of a canonical table (§6.1).
func (a Alphabet) String() string { return string(a.symbols) }

// Index returns the column index of symbol b, or (-1, false) if b is not
// in the alphabet.
func (a Alphabet) Index(b byte) (int, bool) {
	i, ok := a.index[b]
	return i, ok
}

// Equal reports whether two alphabets are byte-equal: same symbols, same
// order (spec §3 invariant 2 — comparability between two DFAs requires
// exactly this).
func (a Alphabet) Equal(other Alphabet) bool {
	return string(a.symbols) == string(other.symbols)
}
