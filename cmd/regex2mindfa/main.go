// Command regex2mindfa compiles a regex + alphabet input file into a
// minimized, complete DFA table (spec §4.1, §6.5).
package main

import (
	"os"

	"github.com/coregx/dfajudge/regexcompile"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func main() {
	if len(os.Args) != 3 {
		gologger.Fatal().Msgf("usage: regex2mindfa <input> <output.dfa>")
	}
	input, output := os.Args[1], os.Args[2]

	if !fileutil.FileExists(input) {
		gologger.Fatal().Msgf("input file does not exist: %s", input)
	}

	if err := regexcompile.Compile(input, output); err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
}
