package regexcompile

import "github.com/coregx/dfajudge/automaton"

// isAtomByte reports whether b is a literal atom — an alphabet symbol or
// the internal ε marker, as opposed to an operator or parenthesis.
func isAtomByte(b byte) bool {
	return !isOperatorByte(b)
}

// endsAtom reports whether b can be the last token of an atom, per spec
// §4.1's "explicit concatenation" rule: symbol, ε, ')', '*'.
func endsAtom(b byte) bool {
	return isAtomByte(b) || b == '*' || b == ')'
}

// startsAtom reports whether b can be the first token of an atom:
// symbol, ε, '('.
func startsAtom(b byte) bool {
	return isAtomByte(b) || b == '('
}

// InsertConcatenation inserts automaton.ConcatMarker between any two
// adjacent tokens (a, b) where a ends an atom and b begins one, per spec
// §4.1. Grounded on DanielRasho-CT-Project-1's addConcatenationSymbol,
// adapted to this spec's token set (single bytes, no char classes).
func InsertConcatenation(tokens []byte) []byte {
	if len(tokens) == 0 {
		return tokens
	}
	out := make([]byte, 0, len(tokens)*2)
	for i, tok := range tokens {
		out = append(out, tok)
		if i+1 < len(tokens) && endsAtom(tok) && startsAtom(tokens[i+1]) {
			out = append(out, automaton.ConcatMarker)
		}
	}
	return out
}

// precedence returns the shunting-yard precedence of an operator token,
// per spec §4.1: star = 3, concat = 2, union = 1.
func precedence(op byte) int {
	switch op {
	case '*':
		return 3
	case automaton.ConcatMarker:
		return 2
	case '|', '+':
		return 1
	default:
		return 0
	}
}

// isLeftAssoc reports whether op is left-associative. Spec §4.1: "all
// operators left-associative except star".
func isLeftAssoc(op byte) bool {
	return op != '*'
}

// ToPostfix runs the shunting-yard algorithm over a token stream that
// already has explicit concatenation markers inserted, producing
// Reverse Polish (postfix) notation for Thompson construction. Mismatched
// parentheses are fatal, per spec §4.1.
func ToPostfix(tokens []byte) ([]byte, error) {
	output := make([]byte, 0, len(tokens))
	var ops []byte

	for _, tok := range tokens {
		switch {
		case tok == '(':
			ops = append(ops, tok)

		case tok == ')':
			closed := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top == '(' {
					closed = true
					break
				}
				output = append(output, top)
			}
			if !closed {
				return nil, automaton.Newf(automaton.KindInputFormat, 1, "unbalanced parentheses: unmatched ')'")
			}

		case tok == '*' || tok == '|' || tok == '+' || tok == automaton.ConcatMarker:
			p := precedence(tok)
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top == '(' {
					break
				}
				tp := precedence(top)
				if tp > p || (tp == p && isLeftAssoc(tok)) {
					output = append(output, top)
					ops = ops[:len(ops)-1]
					continue
				}
				break
			}
			ops = append(ops, tok)

		default: // literal atom: alphabet symbol or ε marker
			output = append(output, tok)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top == '(' {
			return nil, automaton.Newf(automaton.KindInputFormat, 1, "unbalanced parentheses: unmatched '('")
		}
		output = append(output, top)
	}

	return output, nil
}
