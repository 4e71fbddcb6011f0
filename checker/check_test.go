package checker

import (
	"strings"
	"testing"

	"github.com/coregx/dfajudge/automaton"
	"github.com/coregx/dfajudge/dfaspec"
	"github.com/coregx/dfajudge/regexcompile"
)

func compile(t *testing.T, regex, alphabetStr string) *automaton.DFA {
	t.Helper()
	alphabet, err := regexcompile.ParseAlphabetLine(alphabetStr)
	if err != nil {
		t.Fatalf("ParseAlphabetLine: %v", err)
	}
	tokens, err := regexcompile.Preprocess(regex, alphabet)
	if err != nil {
		t.Fatalf("Preprocess(%q): %v", regex, err)
	}
	tokens = regexcompile.InsertConcatenation(tokens)
	postfix, err := regexcompile.ToPostfix(tokens)
	if err != nil {
		t.Fatalf("ToPostfix: %v", err)
	}
	nfa, err := regexcompile.BuildNFA(postfix, alphabet)
	if err != nil {
		t.Fatalf("BuildNFA: %v", err)
	}
	dfa, err := regexcompile.Determinize(nfa, alphabet)
	if err != nil {
		t.Fatalf("Determinize: %v", err)
	}
	min, err := regexcompile.Minimize(dfa)
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	return min
}

func TestCheckEndToEndScenario1(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("ab"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	ref := compile(t, "a*b*", "ab")
	user := compile(t, "a*b*", "ab")

	testsText := "1 <eps>\n1 a\n1 b\n1 aabb\n0 ba\n"
	tests, err := ParseTests(strings.NewReader(testsText), alphabet)
	if err != nil {
		t.Fatalf("ParseTests: %v", err)
	}

	result, err := Check(ref, user, tests, nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.Mismatch != nil {
		t.Fatalf("unexpected mismatch: %+v", result.Mismatch)
	}
	if result.Matched != 5 {
		t.Fatalf("Matched = %d, want 5", result.Matched)
	}
}

func TestCheckEndToEndScenario3(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("ab"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	ref := compile(t, "a*", "ab")
	user := compile(t, "a", "ab")

	testsText := "1 <eps>\n1 aa\n"
	tests, err := ParseTests(strings.NewReader(testsText), alphabet)
	if err != nil {
		t.Fatalf("ParseTests: %v", err)
	}

	result, err := Check(ref, user, tests, nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.Mismatch == nil {
		t.Fatal("expected a mismatch, got none")
	}
	if result.Mismatch.Line != 1 {
		t.Errorf("first mismatch at line %d, want 1 (the <eps> line)", result.Mismatch.Line)
	}
	if result.Mismatch.RefAccept != true || result.Mismatch.UserAccept != false {
		t.Errorf("Mismatch = %+v, want ref=true user=false", result.Mismatch)
	}
}

func TestCheckEndToEndScenario4DFASpecUser(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("ab"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	ref := compile(t, "a|b", "ab")

	spec := "Start: q0\nAccept: {q0}\n"
	user, err := dfaspec.ParseSpec(strings.NewReader(spec), alphabet)
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}
	user.Complete()

	tests, err := ParseTests(strings.NewReader("1 <eps>\n"), alphabet)
	if err != nil {
		t.Fatalf("ParseTests: %v", err)
	}

	result, err := Check(ref, user, tests, nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.Mismatch == nil {
		t.Fatal("expected a mismatch (user accepts <eps>, reference does not)")
	}
}

func TestCheckAlphabetMismatchIsCompatibilityError(t *testing.T) {
	ref := compile(t, "a", "ab")
	user := compile(t, "a", "abc")

	_, err := Check(ref, user, nil, nil)
	if err == nil {
		t.Fatal("expected an alphabet compatibility error, got nil")
	}
	diag, ok := err.(*automaton.Diagnostic)
	if !ok {
		t.Fatalf("error is %T, want *automaton.Diagnostic", err)
	}
	if diag.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", diag.ExitCode())
	}
}

func TestCheckSymmetry(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("ab"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	a := compile(t, "(a|b)*abb", "ab")
	b := compile(t, "a*b*", "ab")

	testsText := "1 abb\n1 aabb\n0 a\n1 aaaabbbb\n0 ba\n"
	tests, err := ParseTests(strings.NewReader(testsText), alphabet)
	if err != nil {
		t.Fatalf("ParseTests: %v", err)
	}

	r1, err := Check(a, b, tests, nil)
	if err != nil {
		t.Fatalf("Check(a,b): %v", err)
	}
	r2, err := Check(b, a, tests, nil)
	if err != nil {
		t.Fatalf("Check(b,a): %v", err)
	}

	if (r1.Mismatch == nil) != (r2.Mismatch == nil) {
		t.Fatalf("symmetry violated: Check(a,b).Mismatch=%v Check(b,a).Mismatch=%v", r1.Mismatch, r2.Mismatch)
	}
	if r1.Mismatch != nil && r1.Mismatch.Line != r2.Mismatch.Line {
		t.Errorf("symmetric checks disagree on divergence line: %d vs %d", r1.Mismatch.Line, r2.Mismatch.Line)
	}
}

func TestCheckReflexivity(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("ab"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	d := compile(t, "(a|b)*abb", "ab")

	testsText := "1 abb\n0 a\n1 aabbabb\n0 <eps>\n"
	tests, err := ParseTests(strings.NewReader(testsText), alphabet)
	if err != nil {
		t.Fatalf("ParseTests: %v", err)
	}

	result, err := Check(d, d, tests, nil)
	if err != nil {
		t.Fatalf("Check(d,d): %v", err)
	}
	if result.Mismatch != nil {
		t.Fatalf("Check(d,d) should always PASS, got mismatch: %+v", result.Mismatch)
	}
}

func TestCheckLabelWarningIsAdvisoryOnly(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("ab"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	ref := compile(t, "a*", "ab")
	user := compile(t, "a*", "ab")

	// The declared label (0) disagrees with the reference (accepts "a");
	// this must warn, not fail the check.
	tests, err := ParseTests(strings.NewReader("0 a\n"), alphabet)
	if err != nil {
		t.Fatalf("ParseTests: %v", err)
	}

	var warnings []LabelWarning
	result, err := Check(ref, user, tests, func(w LabelWarning) { warnings = append(warnings, w) })
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if result.Mismatch != nil {
		t.Fatalf("label disagreement must not fail the check, got mismatch: %+v", result.Mismatch)
	}
	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
}
