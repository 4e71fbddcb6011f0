// Package regexcompile implements the regex → minimal DFA pipeline of
// spec §4.1: lexing and explicit-concatenation insertion, shunting-yard
// postfix conversion, Thompson construction, subset construction, and
// Hopcroft minimization.
package regexcompile

import (
	"bufio"
	"os"

	"github.com/coregx/dfajudge/automaton"
)

// Compile reads a two-line regex input file (the regex on line 1, its
// declared alphabet on line 2), runs it through the full compilation
// pipeline, and writes the resulting minimal DFA to outputPath in the
// canonical table format (spec §6.1).
func Compile(inputPath, outputPath string) error {
	f, err := os.Open(inputPath)
	if err != nil {
		return automaton.Newf(automaton.KindResource, 0, "cannot open %s: %v", inputPath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !scanner.Scan() {
		return automaton.Newf(automaton.KindInputFormat, 1, "missing regex line")
	}
	regexLine := scanner.Text()

	if !scanner.Scan() {
		return automaton.Newf(automaton.KindInputFormat, 2, "missing alphabet line")
	}
	alphabetLine := scanner.Text()

	alphabet, err := ParseAlphabetLine(alphabetLine)
	if err != nil {
		return err
	}

	tokens, err := Preprocess(regexLine, alphabet)
	if err != nil {
		return err
	}
	tokens = InsertConcatenation(tokens)

	postfix, err := ToPostfix(tokens)
	if err != nil {
		return err
	}

	nfa, err := BuildNFA(postfix, alphabet)
	if err != nil {
		return err
	}

	dfa, err := Determinize(nfa, alphabet)
	if err != nil {
		return err
	}

	minDFA, err := Minimize(dfa)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return automaton.Newf(automaton.KindResource, 0, "cannot create %s: %v", outputPath, err)
	}
	defer out.Close()

	return automaton.WriteTable(out, minDFA)
}
