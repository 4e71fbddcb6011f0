package checker

import (
	"strings"
	"testing"

	"github.com/coregx/dfajudge/automaton"
)

func TestParseTestsBasic(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("ab"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	input := "# comment\n\n1 <eps>\n0 ba\n1 aabb\n"
	cases, err := ParseTests(strings.NewReader(input), alphabet)
	if err != nil {
		t.Fatalf("ParseTests: %v", err)
	}
	if len(cases) != 3 {
		t.Fatalf("len(cases) = %d, want 3", len(cases))
	}
	if !cases[0].Label || len(cases[0].Symbols) != 0 {
		t.Errorf("cases[0] = %+v, want label=true symbols=[]", cases[0])
	}
	if cases[1].Label || len(cases[1].Symbols) != 2 {
		t.Errorf("cases[1] = %+v, want label=false symbols=[b a]", cases[1])
	}
}

func TestParseTestsRejectsUnknownSymbol(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("ab"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	if _, err := ParseTests(strings.NewReader("1 abc\n"), alphabet); err == nil {
		t.Fatal("expected an error for 'c' outside the alphabet {a,b}")
	}
}

func TestParseTestsRejectsBadLabel(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("a"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	if _, err := ParseTests(strings.NewReader("2 a\n"), alphabet); err == nil {
		t.Fatal("expected an error for a label that isn't 0 or 1")
	}
}

func TestParseTestsSkipsBlankAndCommentLines(t *testing.T) {
	alphabet, err := automaton.NewAlphabet([]byte("a"))
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	input := "\n# just a comment\n   \n1 a\n"
	cases, err := ParseTests(strings.NewReader(input), alphabet)
	if err != nil {
		t.Fatalf("ParseTests: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("len(cases) = %d, want 1", len(cases))
	}
	if cases[0].Line != 4 {
		t.Errorf("Line = %d, want 4 (1-based, counting skipped lines)", cases[0].Line)
	}
}
