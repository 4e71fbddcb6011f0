package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTable emits d in the canonical on-disk form of spec §6.1. The
// DFA is assumed Complete and Validated — WriteTable does not re-check
// totality, it trusts the caller's pipeline stage boundary (spec §3
// "Lifecycle": read -> build -> emit -> free, a single sequential pass).
func WriteTable(w io.Writer, d *DFA) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "ALPHABET %d %s\n", d.Alphabet.Len(), d.Alphabet.String())
	fmt.Fprintf(bw, "STATES %d\n", d.NStates)
	fmt.Fprintf(bw, "START %d\n", d.Start)

	fmt.Fprintf(bw, "ACCEPT %d", len(d.Accept))
	for _, a := range d.Accept {
		fmt.Fprintf(bw, " %d", a)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "TRANS")
	for _, row := range d.Trans {
		parts := make([]string, len(row))
		for i, v := range row {
			parts[i] = strconv.Itoa(v)
		}
		fmt.Fprintln(bw, strings.Join(parts, " "))
	}
	fmt.Fprintln(bw, "END")

	return bw.Flush()
}

// ReadTable parses the canonical on-disk form of spec §6.1. It is strict:
// any deviation from the grammar — wrong keyword, wrong field count,
// out-of-range index, row with the wrong column count — is a
// KindInputFormat Diagnostic naming the offending line.
func ReadTable(r io.Reader) (*DFA, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		line++
		return scanner.Text(), true
	}

	alphaLine, ok := nextLine()
	if !ok {
		return nil, Newf(KindInputFormat, line+1, "missing ALPHABET line")
	}
	alphaFields := strings.Fields(alphaLine)
	if len(alphaFields) != 3 || alphaFields[0] != "ALPHABET" {
		return nil, Newf(KindInputFormat, line, "malformed ALPHABET line: %q", alphaLine)
	}
	k, err := strconv.Atoi(alphaFields[1])
	if err != nil || k < 0 {
		return nil, Newf(KindInputFormat, line, "malformed alphabet size: %q", alphaFields[1])
	}
	if len(alphaFields[2]) != k {
		return nil, Newf(KindInputFormat, line, "alphabet string length %d does not match declared size %d", len(alphaFields[2]), k)
	}
	alphabet, derr := NewAlphabet([]byte(alphaFields[2]))
	if derr != nil {
		return nil, derr
	}

	statesLine, ok := nextLine()
	if !ok {
		return nil, Newf(KindInputFormat, line+1, "missing STATES line")
	}
	statesFields := strings.Fields(statesLine)
	if len(statesFields) != 2 || statesFields[0] != "STATES" {
		return nil, Newf(KindInputFormat, line, "malformed STATES line: %q", statesLine)
	}
	n, err := strconv.Atoi(statesFields[1])
	if err != nil || n <= 0 {
		return nil, Newf(KindInputFormat, line, "malformed state count: %q", statesFields[1])
	}

	startLine, ok := nextLine()
	if !ok {
		return nil, Newf(KindInputFormat, line+1, "missing START line")
	}
	startFields := strings.Fields(startLine)
	if len(startFields) != 2 || startFields[0] != "START" {
		return nil, Newf(KindInputFormat, line, "malformed START line: %q", startLine)
	}
	start, err := strconv.Atoi(startFields[1])
	if err != nil || start < 0 || start >= n {
		return nil, Newf(KindInputFormat, line, "start state %q out of range [0,%d)", startFields[1], n)
	}

	acceptLine, ok := nextLine()
	if !ok {
		return nil, Newf(KindInputFormat, line+1, "missing ACCEPT line")
	}
	acceptFields := strings.Fields(acceptLine)
	if len(acceptFields) < 2 || acceptFields[0] != "ACCEPT" {
		return nil, Newf(KindInputFormat, line, "malformed ACCEPT line: %q", acceptLine)
	}
	m, err := strconv.Atoi(acceptFields[1])
	if err != nil || m < 0 {
		return nil, Newf(KindInputFormat, line, "malformed accept count: %q", acceptFields[1])
	}
	if len(acceptFields)-2 != m {
		return nil, Newf(KindInputFormat, line, "ACCEPT declares %d indices but lists %d", m, len(acceptFields)-2)
	}
	accept := make([]int, 0, m)
	prev := -1
	for _, f := range acceptFields[2:] {
		a, err := strconv.Atoi(f)
		if err != nil || a < 0 || a >= n {
			return nil, Newf(KindInputFormat, line, "accept index %q out of range [0,%d)", f, n)
		}
		if a <= prev {
			return nil, Newf(KindInputFormat, line, "ACCEPT indices not strictly ascending at %d", a)
		}
		prev = a
		accept = append(accept, a)
	}

	transLine, ok := nextLine()
	if !ok || transLine != "TRANS" {
		return nil, Newf(KindInputFormat, line+1, "expected TRANS keyword")
	}

	trans := make([][]int, n)
	for i := 0; i < n; i++ {
		rowLine, ok := nextLine()
		if !ok {
			return nil, Newf(KindInputFormat, line+1, "missing transition row %d", i)
		}
		fields := strings.Fields(rowLine)
		if len(fields) != k {
			return nil, Newf(KindInputFormat, line, "row %d has %d cells, want %d", i, len(fields), k)
		}
		row := make([]int, k)
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v >= n {
				return nil, Newf(KindInputFormat, line, "row %d cell %d: %q out of range [0,%d)", i, j, f, n)
			}
			row[j] = v
		}
		trans[i] = row
	}

	endLine, ok := nextLine()
	if !ok || endLine != "END" {
		return nil, Newf(KindInputFormat, line+1, "expected END keyword")
	}

	d := &DFA{Alphabet: alphabet, NStates: n, Trans: trans, Start: start, Accept: accept}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
