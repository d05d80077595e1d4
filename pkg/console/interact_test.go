package console

import (
	"testing"

	. "nscript.dev/pkg/prog/progtest"
)

func TestInteract_NonTTY(t *testing.T) {
	Test(t, Program{},
		// Without a terminal there is no prompt; values and errors are still
		// written, blank lines are skipped, and the command counter only
		// advances for evaluated lines.
		ThatNScript("-norc").
			WithStdin("1 + 2\n'a' + 'b'\n\n   \nnope\n").
			WritesStdout("▶ 3\n▶ 'ab'\n").
			WritesStderrContaining("[tty 3]"),
		// A partial last line is still evaluated.
		ThatNScript("-norc").WithStdin("7 - 3").WritesStdout("▶ 4\n"),
		ThatNScript("-norc").WithStdin("").DoesNothing(),
	)
}

func TestInteract_EnvironmentPersistsAcrossLines(t *testing.T) {
	Test(t, Program{},
		ThatNScript("-norc").
			WithStdin("x = 5\nx + 1\nx = x * 10\nx\n").
			WritesStdout("▶ 6\n▶ 50\n"),
	)
}

func TestInteract_ErrorDoesNotEndSession(t *testing.T) {
	Test(t, Program{},
		ThatNScript("-norc").
			WithStdin("1 / 0\n2 + 2\n").
			WritesStdout("▶ 4\n").
			WritesStderrContaining("Runtime error:"),
	)
}
