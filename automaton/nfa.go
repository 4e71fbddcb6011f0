package automaton

// StateID identifies a state within an NFA's or DFA's owning arena.
type StateID int32

// InvalidState marks a not-yet-patched transition target.
const InvalidState StateID = -1

// MaxNFAStates is the compile-time bound on ε-NFA size (spec §4.1).
const MaxNFAStates = 4096

type nfaKind uint8

const (
	nfaSymbol nfaKind = iota
	nfaEpsilon
	nfaSplit
	nfaMatch
)

// nfaState is one node of the ε-NFA. Only the fields relevant to its kind
// are meaningful: Symbol states hold (symbol, next); Epsilon states hold
// (next); Split states hold (left, right); Match states hold none. This
// mirrors the teacher's single-arena, tagged-union State layout
// (nfa.Builder's State), narrowed to this spec's edge alphabet: a single
// byte index or ε, no byte ranges, no captures, no look-around.
type nfaState struct {
	kind   nfaKind
	symbol int // alphabet column index, valid when kind == nfaSymbol
	next   StateID
	left   StateID
	right  StateID
}

// NFA is a Thompson ε-NFA: an arena of states with exactly one entry and
// one accepting state, per spec §3's Thompson invariant.
type NFA struct {
	states []nfaState
	Start  StateID
	Accept StateID // the single Match state
}

// Builder constructs an NFA incrementally via Thompson construction. Each
// Add* call appends exactly one state to the arena and returns its id;
// Patch later fixes up the single open successor a fragment's accept
// state carries. Adapted from nfa.Builder (nfa/builder.go) — trimmed to
// this spec's token set (no sparse ranges, no capture/look-around states)
// and to a fragment model where every fragment's accept state always has
// exactly one still-open `next` pointer, so unions and stars only ever
// need one Patch call per branch instead of a deferred split-patch.
type Builder struct {
	states []nfaState
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]nfaState, 0, 16)}
}

// AddSymbol adds a state that consumes the alphabet symbol at column
// symbolIdx and transitions to next.
func (b *Builder) AddSymbol(symbolIdx int, next StateID) StateID {
	return b.push(nfaState{kind: nfaSymbol, symbol: symbolIdx, next: next})
}

// AddEpsilon adds a state with a single ε-transition to next (next may be
// InvalidState, to be Patched later).
func (b *Builder) AddEpsilon(next StateID) StateID {
	return b.push(nfaState{kind: nfaEpsilon, next: next})
}

// AddSplit adds a state with ε-transitions to both left and right. Unlike
// the teacher's Split, both branches must be known at creation time — the
// postfix/stack construction in regexcompile/thompson.go always has both
// ready, so no deferred PatchSplit is needed.
func (b *Builder) AddSplit(left, right StateID) StateID {
	return b.push(nfaState{kind: nfaSplit, left: left, right: right})
}

// AddMatch adds the (unique) accepting state.
func (b *Builder) AddMatch() StateID {
	return b.push(nfaState{kind: nfaMatch})
}

func (b *Builder) push(s nfaState) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, s)
	return id
}

// Patch sets the open `next` pointer of a Symbol or Epsilon state. It is
// an error to patch a Split or Match state, or an out-of-bounds id.
func (b *Builder) Patch(id, target StateID) error {
	if int(id) < 0 || int(id) >= len(b.states) {
		return Newf(KindResource, 0, "NFA state id %d out of bounds", id)
	}
	s := &b.states[id]
	switch s.kind {
	case nfaSymbol, nfaEpsilon:
		s.next = target
		return nil
	default:
		return Newf(KindResource, 0, "cannot patch non-relay NFA state %d", id)
	}
}

// Len reports the number of states currently in the arena.
func (b *Builder) Len() int { return len(b.states) }

// Len reports the number of states in the NFA's arena — the universe
// size subset construction's bitset.Set identities range over.
func (n *NFA) Len() int { return len(n.states) }

// EpsilonTargets returns the states reachable from id via a single
// ε-transition: one target for an Epsilon state, two (left, right) for
// a Split state, none for Symbol or Match states.
func (n *NFA) EpsilonTargets(id StateID) []StateID {
	s := n.states[id]
	switch s.kind {
	case nfaEpsilon:
		return []StateID{s.next}
	case nfaSplit:
		return []StateID{s.left, s.right}
	default:
		return nil
	}
}

// IsMatch reports whether id names the NFA's unique Match state.
func (n *NFA) IsMatch(id StateID) bool {
	return n.states[id].kind == nfaMatch
}

// SymbolTarget reports the state reached from id on alphabet column
// symbolIdx, if id is a Symbol state keyed on that column.
func (n *NFA) SymbolTarget(id StateID, symbolIdx int) (StateID, bool) {
	s := n.states[id]
	if s.kind == nfaSymbol && s.symbol == symbolIdx {
		return s.next, true
	}
	return InvalidState, false
}

// Build finalizes the NFA with the given start and accept (Match) states.
func (b *Builder) Build(start, accept StateID) (*NFA, error) {
	if len(b.states) > MaxNFAStates {
		return nil, Newf(KindResource, 0, "NFA has %d states, exceeds limit of %d", len(b.states), MaxNFAStates)
	}
	return &NFA{states: b.states, Start: start, Accept: accept}, nil
}
