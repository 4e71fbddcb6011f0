package dfaspec

import (
	"os"

	"github.com/coregx/dfajudge/automaton"
)

// Compile parses a DFA-spec file against alphabetBytes (spec §4.2) and
// writes the resulting complete (but unminimized) DFA to outputPath in
// the canonical table format (spec §6.1).
func Compile(alphabetBytes []byte, specPath, outputPath string) error {
	alphabet, err := automaton.NewAlphabet(alphabetBytes)
	if err != nil {
		return err
	}

	f, err := os.Open(specPath)
	if err != nil {
		return automaton.Newf(automaton.KindResource, 0, "cannot open %s: %v", specPath, err)
	}
	defer f.Close()

	d, err := ParseSpec(f, alphabet)
	if err != nil {
		return err
	}
	d.Complete()
	if err := d.Validate(); err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return automaton.Newf(automaton.KindResource, 0, "cannot create %s: %v", outputPath, err)
	}
	defer out.Close()

	return automaton.WriteTable(out, d)
}
