package regexcompile

import (
	"strings"

	"github.com/coregx/dfajudge/automaton"
)

// ParseAlphabetLine parses line 2 of a regex input file (spec §4.1):
// strip whitespace, commas, and semicolons, then validate and keep the
// distinct bytes in first-seen order via automaton.NewAlphabet.
func ParseAlphabetLine(line string) (automaton.Alphabet, error) {
	stripped := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n', ',', ';':
			return -1
		}
		return r
	}, line)
	return automaton.NewAlphabet([]byte(stripped))
}
