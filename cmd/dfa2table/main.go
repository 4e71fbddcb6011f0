// Command dfa2table compiles a human-written DFA-spec against a fixed
// alphabet into the canonical table form (spec §4.2, §6.5).
package main

import (
	"os"

	"github.com/coregx/dfajudge/dfaspec"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func main() {
	if len(os.Args) != 4 {
		gologger.Fatal().Msgf("usage: dfa2table <alphabet-string> <spec> <output.dfa>")
	}
	alphabetStr, specPath, output := os.Args[1], os.Args[2], os.Args[3]

	if !fileutil.FileExists(specPath) {
		gologger.Fatal().Msgf("spec file does not exist: %s", specPath)
	}

	if err := dfaspec.Compile([]byte(alphabetStr), specPath, output); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
