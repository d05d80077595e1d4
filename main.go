// Command nscript is the console host of the NScript scripting language. It
// also bundles the language server and version subprograms.
package main

import (
	"os"

	"nscript.dev/pkg/buildinfo"
	"nscript.dev/pkg/console"
	"nscript.dev/pkg/lsp"
	"nscript.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, lsp.Program{}, console.Program{})))
}
