package automaton

import "testing"

// buildSingleSymbolNFA constructs the minimal fragment for a one-symbol
// literal: start --sym--> accept.
func buildSingleSymbolNFA(t *testing.T, symbolIdx int) *NFA {
	t.Helper()
	b := NewBuilder()
	match := b.AddMatch()
	sym := b.AddSymbol(symbolIdx, match)
	n, err := b.Build(sym, match)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return n
}

func TestBuilderSingleSymbolFragment(t *testing.T) {
	n := buildSingleSymbolNFA(t, 0)
	if !n.IsMatch(n.Accept) {
		t.Fatal("Accept state must be the Match state")
	}
	next, ok := n.SymbolTarget(n.Start, 0)
	if !ok || next != n.Accept {
		t.Fatalf("SymbolTarget(Start, 0) = (%d, %v), want (%d, true)", next, ok, n.Accept)
	}
	if _, ok := n.SymbolTarget(n.Start, 1); ok {
		t.Error("SymbolTarget should fail for a column the state doesn't key on")
	}
}

func TestBuilderEpsilonAndSplitTargets(t *testing.T) {
	b := NewBuilder()
	match := b.AddMatch()
	eps := b.AddEpsilon(match)
	split := b.AddSplit(eps, match)
	n, err := b.Build(split, match)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	epsTargets := n.EpsilonTargets(eps)
	if len(epsTargets) != 1 || epsTargets[0] != match {
		t.Errorf("EpsilonTargets(eps) = %v, want [%d]", epsTargets, match)
	}

	splitTargets := n.EpsilonTargets(split)
	if len(splitTargets) != 2 || splitTargets[0] != eps || splitTargets[1] != match {
		t.Errorf("EpsilonTargets(split) = %v, want [%d %d]", splitTargets, eps, match)
	}

	if n.EpsilonTargets(match) != nil {
		t.Error("EpsilonTargets(match) should be nil: a Match state has no outgoing edges")
	}
}

func TestBuilderPatchRejectsSplitAndMatch(t *testing.T) {
	b := NewBuilder()
	match := b.AddMatch()
	split := b.AddSplit(match, match)
	if err := b.Patch(split, match); err == nil {
		t.Error("Patch should reject a Split state")
	}
	if err := b.Patch(match, match); err == nil {
		t.Error("Patch should reject a Match state")
	}
}

func TestBuilderPatchRewritesOpenSuccessor(t *testing.T) {
	b := NewBuilder()
	match := b.AddMatch()
	eps := b.AddEpsilon(InvalidState)
	if err := b.Patch(eps, match); err != nil {
		t.Fatalf("Patch: %v", err)
	}
	n, err := b.Build(eps, match)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	targets := n.EpsilonTargets(eps)
	if len(targets) != 1 || targets[0] != match {
		t.Errorf("EpsilonTargets(eps) after Patch = %v, want [%d]", targets, match)
	}
}

func TestBuilderRejectsOversizedNFA(t *testing.T) {
	b := NewBuilder()
	for i := 0; i <= MaxNFAStates; i++ {
		b.AddEpsilon(InvalidState)
	}
	if _, err := b.Build(0, 0); err == nil {
		t.Fatal("expected an error for an NFA over the state limit")
	}
}

func TestNFALen(t *testing.T) {
	n := buildSingleSymbolNFA(t, 0)
	if n.Len() != 2 {
		t.Errorf("Len() = %d, want 2", n.Len())
	}
}
