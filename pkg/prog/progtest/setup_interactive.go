//go:build !windows
// +build !windows

package progtest

import (
	"os"

	"github.com/creack/pty"

	"nscript.dev/pkg/testutil"
)

// SetupInteractive creates the file descriptors for testing a subprogram
// that reads commands from a terminal. It returns the control (master) end
// of the pty, and the fds to pass to prog.Run; all three fds are the
// terminal end, so prompts, values and errors all appear on the control end.
func SetupInteractive(c testutil.Cleanuper) (*os.File, [3]*os.File) {
	control, tty, err := pty.Open()
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() {
		control.Close()
		tty.Close()
	})
	return control, [3]*os.File{tty, tty, tty}
}
