package regexcompile

import "github.com/coregx/dfajudge/automaton"

// fragment is a partially built NFA fragment produced while folding a
// postfix token stream. Every fragment has exactly one open pointer to
// patch: the next field of the state named by out. Split states never
// appear as out, since both of their branches are always resolved (to
// a real successor or to a join state) at the moment they're created —
// see automaton.Builder.AddSplit.
type fragment struct {
	start automaton.StateID
	out   automaton.StateID
}

// BuildNFA folds a postfix token stream (from ToPostfix) into an NFA via
// Thompson's construction, grounded on the classic stack-of-fragments
// algorithm and adapted to this package's single-open-pointer fragment
// representation. ε atoms, '|'/'+' union, concatenation, and '*' are
// the only constructs spec §4.1 defines.
func BuildNFA(postfix []byte, alphabet automaton.Alphabet) (*automaton.NFA, error) {
	b := automaton.NewBuilder()
	var stack []fragment

	pop := func() (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, automaton.Newf(automaton.KindInputFormat, 1, "malformed regex: operator with missing operand")
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, nil
	}

	for _, tok := range postfix {
		switch {
		case tok == automaton.EpsilonMarker:
			sid := b.AddEpsilon(automaton.InvalidState)
			stack = append(stack, fragment{sid, sid})

		case tok == '*':
			e, err := pop()
			if err != nil {
				return nil, err
			}
			join := b.AddEpsilon(automaton.InvalidState)
			split := b.AddSplit(e.start, join)
			if err := b.Patch(e.out, split); err != nil {
				return nil, err
			}
			stack = append(stack, fragment{split, join})

		case tok == '|' || tok == '+':
			e2, err := pop()
			if err != nil {
				return nil, err
			}
			e1, err := pop()
			if err != nil {
				return nil, err
			}
			join := b.AddEpsilon(automaton.InvalidState)
			if err := b.Patch(e1.out, join); err != nil {
				return nil, err
			}
			if err := b.Patch(e2.out, join); err != nil {
				return nil, err
			}
			split := b.AddSplit(e1.start, e2.start)
			stack = append(stack, fragment{split, join})

		case tok == automaton.ConcatMarker:
			e2, err := pop()
			if err != nil {
				return nil, err
			}
			e1, err := pop()
			if err != nil {
				return nil, err
			}
			if err := b.Patch(e1.out, e2.start); err != nil {
				return nil, err
			}
			stack = append(stack, fragment{e1.start, e2.out})

		default: // alphabet symbol
			idx, ok := alphabet.Index(tok)
			if !ok {
				return nil, automaton.Newf(automaton.KindInputFormat, 1, "character %q is not in the declared alphabet", string(tok))
			}
			sid := b.AddSymbol(idx, automaton.InvalidState)
			stack = append(stack, fragment{sid, sid})
		}
	}

	if len(stack) != 1 {
		return nil, automaton.Newf(automaton.KindInputFormat, 1, "malformed regex: postfix expression does not reduce to a single fragment")
	}

	final := stack[0]
	match := b.AddMatch()
	if err := b.Patch(final.out, match); err != nil {
		return nil, err
	}
	return b.Build(final.start, match)
}
