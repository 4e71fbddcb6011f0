package checker

import "github.com/coregx/dfajudge/automaton"

// Mismatch describes the first test line on which the reference and
// user DFAs disagree, per spec §4.3.
type Mismatch struct {
	Line       int
	Raw        string
	RefAccept  bool
	UserAccept bool
}

// Result is the outcome of Check: either every test line matched
// (Mismatch is nil, Matched holds the count), or the first divergence
// is recorded.
type Result struct {
	Matched  int
	Mismatch *Mismatch
}

// LabelWarning reports a test line whose declared label disagrees with
// the reference DFA's actual acceptance — advisory only, per spec §9's
// open question ("label is advisory, reference is ground truth").
type LabelWarning struct {
	Line      int
	Raw       string
	Label     bool
	RefAccept bool
}

// Check verifies ref and user share an alphabet, then simulates both
// over every test case in order, stopping at the first behavioral
// divergence (spec §4.3). onLabelWarning, if non-nil, is invoked for
// every test line whose declared label disagrees with the reference —
// a non-fatal, advisory condition that does not affect the result.
func Check(ref, user *automaton.DFA, tests []TestCase, onLabelWarning func(LabelWarning)) (*Result, error) {
	if !ref.Alphabet.Equal(user.Alphabet) {
		return nil, automaton.Newf(automaton.KindCompatibility, 0,
			"alphabet mismatch: reference=%q user=%q", ref.Alphabet.String(), user.Alphabet.String())
	}

	matched := 0
	for _, tc := range tests {
		refAccept := ref.Run(tc.Symbols)
		userAccept := user.Run(tc.Symbols)

		if tc.Label != refAccept && onLabelWarning != nil {
			onLabelWarning(LabelWarning{Line: tc.Line, Raw: tc.Raw, Label: tc.Label, RefAccept: refAccept})
		}

		if refAccept != userAccept {
			return &Result{Matched: matched, Mismatch: &Mismatch{
				Line: tc.Line, Raw: tc.Raw, RefAccept: refAccept, UserAccept: userAccept,
			}}, nil
		}
		matched++
	}

	return &Result{Matched: matched}, nil
}
