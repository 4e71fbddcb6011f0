// Command dfa_checker compares two DFA tables against a labeled test
// set and reports PASS or the first behavioral divergence (spec §4.3,
// §6.5). Exit codes: 0 PASS, 1 parse/usage error, 2 compatibility or
// behavioral mismatch.
package main

import (
	"fmt"
	"os"

	"github.com/coregx/dfajudge/automaton"
	"github.com/coregx/dfajudge/checker"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func fail(err error) {
	if diag, ok := err.(*automaton.Diagnostic); ok {
		gologger.Error().Msgf("%v", diag)
		os.Exit(diag.ExitCode())
	}
	gologger.Error().Msgf("%v", err)
	os.Exit(1)
}

func openTable(path string) *automaton.DFA {
	if !fileutil.FileExists(path) {
		gologger.Fatal().Msgf("table file does not exist: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		fail(automaton.Newf(automaton.KindResource, 0, "cannot open %s: %v", path, err))
	}
	defer f.Close()

	d, err := automaton.ReadTable(f)
	if err != nil {
		fail(err)
	}
	return d
}

func main() {
	if len(os.Args) != 4 {
		gologger.Fatal().Msgf("usage: dfa_checker <ref.dfa> <user.dfa> <tests>")
	}
	refPath, userPath, testsPath := os.Args[1], os.Args[2], os.Args[3]

	ref := openTable(refPath)
	user := openTable(userPath)

	if !ref.Alphabet.Equal(user.Alphabet) {
		gologger.Error().Msgf("alphabet mismatch: reference=%q user=%q", ref.Alphabet.String(), user.Alphabet.String())
		os.Exit(2)
	}

	if !fileutil.FileExists(testsPath) {
		gologger.Fatal().Msgf("tests file does not exist: %s", testsPath)
	}
	tf, err := os.Open(testsPath)
	if err != nil {
		fail(automaton.Newf(automaton.KindResource, 0, "cannot open %s: %v", testsPath, err))
	}
	defer tf.Close()

	tests, err := checker.ParseTests(tf, ref.Alphabet)
	if err != nil {
		fail(err)
	}

	result, err := checker.Check(ref, user, tests, func(w checker.LabelWarning) {
		gologger.Warning().Msgf("line %d: declared label %v disagrees with reference (accepts=%v) for %q",
			w.Line, w.Label, w.RefAccept, w.Raw)
	})
	if err != nil {
		fail(err)
	}

	if result.Mismatch != nil {
		m := result.Mismatch
		gologger.Error().Msgf("line %d: %q: reference=%v user=%v", m.Line, m.Raw, m.RefAccept, m.UserAccept)
		os.Exit(2)
	}

	fmt.Printf("PASS: %d tests matched\n", result.Matched)
}
