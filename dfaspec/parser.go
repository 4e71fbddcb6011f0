// Package dfaspec implements the DFA-spec → table compiler of spec §4.2:
// parse a human-written transition-function spec against a fixed
// alphabet and emit the canonical table form.
package dfaspec

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/coregx/dfajudge/automaton"
)

// maxStateIndex bounds an individual q<n> token, per spec §4.2 ("n ≥ 0,
// ≤ 1,000,000"), independent of the 4096-state materialized-DFA cap
// enforced separately in ParseSpec.
const maxStateIndex = 1000000

type transKey struct {
	state, symbol int
}

// ParseSpec parses a DFA-spec (spec §4.2 grammar) into an unminimized,
// possibly-incomplete DFA — the caller is expected to call Complete and
// Validate, mirroring the table-driven construction already used by
// automaton.ReadTable and regexcompile/subset.go.
func ParseSpec(r io.Reader, alphabet automaton.Alphabet) (*automaton.DFA, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		haveStart  bool
		start      int
		haveAccept bool
		accept     []int
		trans      = make(map[transKey]int)
		maxState   = -1
	)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}

		kw, rest, hasKw := splitKeyword(line)
		switch {
		case hasKw && kw == "start":
			if haveStart {
				return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "duplicate Start line")
			}
			n, err := parseStateToken(rest)
			if err != nil {
				return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "malformed Start line: %v", err)
			}
			start, haveStart = n, true
			if n > maxState {
				maxState = n
			}

		case hasKw && kw == "accept":
			if haveAccept {
				return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "duplicate Accept line")
			}
			accept = parseAcceptLine(rest)
			haveAccept = true
			for _, a := range accept {
				if a > maxState {
					maxState = a
				}
			}

		default:
			src, sym, dst, err := parseTransitionLine(line, lineNo, alphabet)
			if err != nil {
				return nil, err
			}
			key := transKey{src, sym}
			if existing, ok := trans[key]; ok {
				if existing != dst {
					return nil, automaton.Newf(automaton.KindSemantic, lineNo,
						"nondeterministic transition: (q%d,%c) already -> q%d, got q%d",
						src, alphabet.Bytes()[sym], existing, dst)
				}
			} else {
				trans[key] = dst
			}
			if src > maxState {
				maxState = src
			}
			if dst > maxState {
				maxState = dst
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, automaton.Newf(automaton.KindResource, lineNo, "reading spec: %v", err)
	}

	if !haveStart {
		return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "missing Start line")
	}
	if !haveAccept {
		return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "missing Accept line")
	}
	if maxState < 0 {
		return nil, automaton.Newf(automaton.KindInputFormat, lineNo, "spec defines no states")
	}

	n := maxState + 1
	if n > automaton.MaxDFAStates {
		return nil, automaton.Newf(automaton.KindResource, 0, "spec defines %d states, exceeds limit of %d", n, automaton.MaxDFAStates)
	}
	if start >= n {
		return nil, automaton.Newf(automaton.KindSemantic, 0, "start state q%d out of materialized range [0,%d)", start, n)
	}
	for _, a := range accept {
		if a >= n {
			return nil, automaton.Newf(automaton.KindSemantic, 0, "accept state q%d out of materialized range [0,%d)", a, n)
		}
	}

	return buildPartialDFA(alphabet, n, start, accept, trans), nil
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		return s[:i]
	}
	return s
}

// splitKeyword reports whether line has the form "<word>: <rest>", with
// keyword matching done case-insensitively (spec §4.2: "case-insensitive
// keyword").
func splitKeyword(line string) (keyword, rest string, ok bool) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(line[:i])), strings.TrimSpace(line[i+1:]), true
}

// parseStateToken parses a single "q<n>" token.
func parseStateToken(tok string) (int, error) {
	tok = strings.TrimSpace(tok)
	if len(tok) < 2 || (tok[0] != 'q' && tok[0] != 'Q') {
		return 0, fmt.Errorf("not a state token: %q", tok)
	}
	n, err := strconv.Atoi(tok[1:])
	if err != nil || n < 0 || n > maxStateIndex {
		return 0, fmt.Errorf("invalid state index: %q", tok)
	}
	return n, nil
}

// parseAcceptLine tokenizes the Accept set on commas, braces, and
// whitespace. Per spec §9's open question, a token that doesn't parse
// as q<n> is silently dropped rather than rejected.
func parseAcceptLine(rest string) []int {
	fields := strings.FieldsFunc(rest, func(r rune) bool {
		switch r {
		case '{', '}', ',':
			return true
		}
		return r == ' ' || r == '\t'
	})
	var out []int
	for _, f := range fields {
		if n, err := parseStateToken(f); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// parseTransitionLine parses "( q<i>, c ) -> q<j>", tolerant of
// whitespace around each token (spec §4.2).
func parseTransitionLine(line string, lineNo int, alphabet automaton.Alphabet) (src, sym, dst int, err error) {
	open := strings.IndexByte(line, '(')
	if open < 0 {
		return 0, 0, 0, automaton.Newf(automaton.KindInputFormat, lineNo, "unrecognized line: %q", line)
	}
	closeParen := strings.IndexByte(line, ')')
	if closeParen < 0 || closeParen < open {
		return 0, 0, 0, automaton.Newf(automaton.KindInputFormat, lineNo, "malformed transition: missing ')'")
	}

	inner := line[open+1 : closeParen]
	comma := strings.IndexByte(inner, ',')
	if comma < 0 {
		return 0, 0, 0, automaton.Newf(automaton.KindInputFormat, lineNo, "malformed transition: expected (state, symbol)")
	}

	srcState, perr := parseStateToken(inner[:comma])
	if perr != nil {
		return 0, 0, 0, automaton.Newf(automaton.KindInputFormat, lineNo, "malformed source state: %v", perr)
	}

	symTok := strings.TrimSpace(inner[comma+1:])
	if len(symTok) != 1 {
		return 0, 0, 0, automaton.Newf(automaton.KindInputFormat, lineNo, "malformed transition symbol: %q", symTok)
	}
	symIdx, ok := alphabet.Index(symTok[0])
	if !ok {
		return 0, 0, 0, automaton.Newf(automaton.KindSemantic, lineNo, "symbol %q not in alphabet", symTok)
	}

	rest := strings.TrimSpace(line[closeParen+1:])
	arrow := strings.Index(rest, "->")
	if arrow < 0 {
		return 0, 0, 0, automaton.Newf(automaton.KindInputFormat, lineNo, "malformed transition: missing '->'")
	}
	dstState, perr := parseStateToken(rest[arrow+2:])
	if perr != nil {
		return 0, 0, 0, automaton.Newf(automaton.KindInputFormat, lineNo, "malformed destination state: %v", perr)
	}

	return srcState, symIdx, dstState, nil
}

func buildPartialDFA(alphabet automaton.Alphabet, n, start int, accept []int, trans map[transKey]int) *automaton.DFA {
	k := alphabet.Len()
	rows := make([][]int, n)
	for i := range rows {
		row := make([]int, k)
		for j := range row {
			row[j] = -1
		}
		rows[i] = row
	}
	for key, dst := range trans {
		rows[key.state][key.symbol] = dst
	}

	seen := make(map[int]bool, len(accept))
	dedup := make([]int, 0, len(accept))
	for _, a := range accept {
		if !seen[a] {
			seen[a] = true
			dedup = append(dedup, a)
		}
	}
	sort.Ints(dedup)

	return &automaton.DFA{Alphabet: alphabet, NStates: n, Trans: rows, Start: start, Accept: dedup}
}
