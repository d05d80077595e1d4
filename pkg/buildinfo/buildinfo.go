// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X nscript.dev/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"nscript.dev/pkg/prog"
)

// Version identifies the version of NScript. On development commits, it
// identifies the next release.
const Version = "v0.1.0"

// VersionSuffix is appended to Version in the output of "nscript -version"
// to build the full version string. It can be overridden when building.
var VersionSuffix = "-dev.unknown"

// Program is the buildinfo subprogram.
type Program struct{}

// Run runs the buildinfo subprogram.
func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	if !f.Version {
		return prog.ErrNotSuitable
	}
	fullVersion := Version + VersionSuffix
	if f.JSON {
		fmt.Fprintf(fds[1], `{"version":%q,"goversion":%q}`+"\n",
			fullVersion, runtime.Version())
	} else {
		fmt.Fprintln(fds[1], fullVersion)
	}
	return nil
}
