package regexcompile

import (
	"github.com/coregx/dfajudge/automaton"
)

// epsASCIIToken and epsUTF8Bytes are the two surface forms of ε spec
// §4.1 recognizes: the five-byte ASCII token and the two-byte UTF-8
// encoding of U+03B5 (Greek small letter epsilon).
const epsASCIIToken = "<eps>"

var epsUTF8Bytes = []byte{0xCE, 0xB5}

func isOperatorByte(b byte) bool {
	switch b {
	case '|', '+', '*', '(', ')':
		return true
	}
	return false
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// Preprocess turns the raw regex line into a byte stream of tokens ready
// for explicit-concatenation insertion: both ε surface forms are
// replaced by automaton.EpsilonMarker, whitespace is stripped, and every
// remaining byte is checked against Σ ∪ {operators, ε-marker}. Spec §4.1:
// reject non-ASCII bytes remaining after substitution, reject '.', reject
// any character not in Σ ∪ {|,+,*,(,),ε}, reject an empty regex.
func Preprocess(raw string, alphabet automaton.Alphabet) ([]byte, error) {
	src := []byte(raw)
	out := make([]byte, 0, len(src))

	for i := 0; i < len(src); {
		b := src[i]

		if isWhitespace(b) {
			i++
			continue
		}
		if b == '<' && i+len(epsASCIIToken) <= len(src) && string(src[i:i+len(epsASCIIToken)]) == epsASCIIToken {
			out = append(out, automaton.EpsilonMarker)
			i += len(epsASCIIToken)
			continue
		}
		if b == epsUTF8Bytes[0] && i+1 < len(src) && src[i+1] == epsUTF8Bytes[1] {
			out = append(out, automaton.EpsilonMarker)
			i += 2
			continue
		}
		if b >= 0x80 {
			return nil, automaton.Newf(automaton.KindInputFormat, 1, "non-ASCII byte 0x%02x in regex", b)
		}
		if b == '.' {
			return nil, automaton.Newf(automaton.KindInputFormat, 1, "'.' is not a supported regex atom")
		}
		if !isOperatorByte(b) {
			if _, ok := alphabet.Index(b); !ok {
				return nil, automaton.Newf(automaton.KindInputFormat, 1, "character %q is not in the declared alphabet", string(b))
			}
		}
		out = append(out, b)
		i++
	}

	if len(out) == 0 {
		return nil, automaton.Newf(automaton.KindInputFormat, 1, "regex is empty")
	}
	return out, nil
}
