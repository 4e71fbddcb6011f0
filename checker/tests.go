// Package checker implements the DFA equivalence checker of spec §4.3:
// read two DFA tables, verify alphabet compatibility, simulate both over
// every line of a tests file, and report the first divergence.
package checker

import (
	"bufio"
	"io"
	"strings"

	"github.com/coregx/dfajudge/automaton"
)

// epsToken is the tests-file spelling of the empty string, spec §4.3.
const epsToken = "<eps>"

// TestCase is one parsed line of a tests file: a declared label (the
// test author's expectation) and the string to simulate, already
// resolved to alphabet column indices.
type TestCase struct {
	Line    int
	Label   bool
	Raw     string // the string as written, or "<eps>"
	Symbols []int  // column indices into the shared alphabet; empty for <eps>
}

// ParseTests reads a tests file (spec §4.3/§6.4) against alphabet,
// skipping blank lines and '#' comments. Each surviving line must be
// "<label> <string>" where label is 0 or 1 and string is either <eps>
// or a sequence of bytes from alphabet with no whitespace.
func ParseTests(r io.Reader, alphabet automaton.Alphabet) ([]TestCase, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var cases []TestCase
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "malformed tests line: %q", line)
		}

		var label bool
		switch fields[0] {
		case "0":
			label = false
		case "1":
			label = true
		default:
			return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "label must be 0 or 1, got %q", fields[0])
		}

		raw := fields[1]
		var symbols []int
		if raw != epsToken {
			symbols = make([]int, len(raw))
			for i := 0; i < len(raw); i++ {
				col, ok := alphabet.Index(raw[i])
				if !ok {
					return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "character %q not in alphabet %q", string(raw[i]), alphabet.String())
				}
				symbols[i] = col
			}
		}

		cases = append(cases, TestCase{Line: lineNo, Label: label, Raw: raw, Symbols: symbols})
	}
	if err := scanner.Err(); err != nil {
		return nil, automaton.Newf(automaton.KindResource, lineNo, "reading tests file: %v", err)
	}
	return cases, nil
}
