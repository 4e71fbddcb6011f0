package automaton

import "sort"

// MaxDFAStates is the compile-time bound on determinized/minimized DFA
// size (spec §4.1 / §4.2).
const MaxDFAStates = 4096

// noTransition is the sentinel used while a DFA is still partial — it
// never appears in a completed, emitted table.
const noTransition = -1

// DFA is the tuple (Q, Σ, δ, q0, F) of spec §3: a dense state set,
// declared alphabet, a transition table (total once Complete has run),
// a start state, and a sorted-ascending accepting set.
type DFA struct {
	Alphabet Alphabet
	NStates  int
	Trans    [][]int // NStates rows, Alphabet.Len() columns
	Start    int
	Accept   []int // sorted ascending, no duplicates
}

// newPartialDFA allocates a DFA with every cell set to the sentinel
// "no transition" value, for callers building up Trans one cell at a
// time (subset construction, dfaspec parsing) before calling Complete.
func newPartialDFA(alphabet Alphabet, nStates int) *DFA {
	trans := make([][]int, nStates)
	for i := range trans {
		row := make([]int, alphabet.Len())
		for j := range row {
			row[j] = noTransition
		}
		trans[i] = row
	}
	return &DFA{Alphabet: alphabet, NStates: nStates, Trans: trans}
}

// IsAccepting reports whether state is in the accepting set.
func (d *DFA) IsAccepting(state int) bool {
	i := sort.SearchInts(d.Accept, state)
	return i < len(d.Accept) && d.Accept[i] == state
}

// Step returns the state reached from state on alphabet column symbolIdx.
func (d *DFA) Step(state, symbolIdx int) int {
	return d.Trans[state][symbolIdx]
}

// Run simulates the DFA over a string of alphabet symbols starting from
// Start and reports whether the final state accepts. An empty string
// (the <eps> test token) simulates zero transitions, i.e. tests whether
// the start state itself accepts (spec §8.7).
func (d *DFA) Run(symbolIndices []int) bool {
	state := d.Start
	for _, c := range symbolIndices {
		state = d.Step(state, c)
	}
	return d.IsAccepting(state)
}

// Complete adjoins a dead state — non-accepting, self-looping on every
// symbol — and rewrites every sentinel "no transition" cell to point at
// it, per spec §3/§4.1/§4.2's shared completion rule. If no cell is a
// sentinel, Complete is a no-op: per spec, a dead state is adjoined only
// "iff any cell is missing".
func (d *DFA) Complete() {
	deadNeeded := false
	for _, row := range d.Trans {
		for _, next := range row {
			if next == noTransition {
				deadNeeded = true
				break
			}
		}
		if deadNeeded {
			break
		}
	}
	if !deadNeeded {
		return
	}

	dead := d.NStates
	deadRow := make([]int, d.Alphabet.Len())
	for j := range deadRow {
		deadRow[j] = dead
	}
	for _, row := range d.Trans {
		for j, next := range row {
			if next == noTransition {
				row[j] = dead
			}
		}
	}
	d.Trans = append(d.Trans, deadRow)
	d.NStates++
}

// sortAccept normalizes the accepting set to spec §3's required
// strictly-ascending, duplicate-free form.
func sortAccept(states []int) []int {
	seen := make(map[int]bool, len(states))
	out := make([]int, 0, len(states))
	for _, s := range states {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Ints(out)
	return out
}

// Validate checks the four invariants of spec §3 clause 1 that are
// local to a single DFA (totality, in-range cells, sorted accept list,
// in-range start and alphabet shape). It does not check cross-DFA
// comparability (spec §3 clause 2) — that is the checker's job.
func (d *DFA) Validate() error {
	if d.Alphabet.Len() == 0 {
		return Newf(KindSemantic, 0, "DFA alphabet is empty")
	}
	if d.Start < 0 || d.Start >= d.NStates {
		return Newf(KindSemantic, 0, "start state %d out of range [0,%d)", d.Start, d.NStates)
	}
	for i, row := range d.Trans {
		if len(row) != d.Alphabet.Len() {
			return Newf(KindSemantic, 0, "state %d has %d transitions, want %d", i, len(row), d.Alphabet.Len())
		}
		for j, next := range row {
			if next < 0 || next >= d.NStates {
				return Newf(KindSemantic, 0, "state %d symbol %d: transition %d out of range [0,%d)", i, j, next, d.NStates)
			}
		}
	}
	prev := -1
	for _, a := range d.Accept {
		if a < 0 || a >= d.NStates {
			return Newf(KindSemantic, 0, "accept state %d out of range [0,%d)", a, d.NStates)
		}
		if a <= prev {
			return Newf(KindSemantic, 0, "accept list not strictly ascending at %d", a)
		}
		prev = a
	}
	return nil
}
