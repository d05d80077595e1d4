package console

import (
	"testing"

	"nscript.dev/pkg/must"
	. "nscript.dev/pkg/prog/progtest"
	"nscript.dev/pkg/testutil"
)

func TestScript_CodeInArg(t *testing.T) {
	Test(t, Program{},
		ThatNScript("-norc", "-c", "1 + 2").WritesStdout("▶ 3\n"),
		ThatNScript("-norc", "-c", "'foo' + 'bar'").WritesStdout("▶ 'foobar'\n"),
		// Assignments evaluate to none, which is not echoed.
		ThatNScript("-norc", "-c", "x = 5").DoesNothing(),
		ThatNScript("-norc", "-c", "print('hi')").WritesStdout("'hi'"),
		ThatNScript("-norc", "-c", "1 +").
			ExitsWith(2).WritesStderrContaining("Parse error:"),
		ThatNScript("-norc", "-c", "1 / 0").
			ExitsWith(2).WritesStderrContaining("Runtime error:"),
		ThatNScript("-norc", "-c").
			ExitsWith(2).
			WritesStderrContaining("argument to -c must be a single string"),
	)
}

func TestScript_File(t *testing.T) {
	testutil.InTempDir(t)
	must.WriteFile("a.ns", "3 * 4")
	must.WriteFile("bad.ns", "'\xff'")
	Test(t, Program{},
		ThatNScript("-norc", "a.ns").WritesStdout("▶ 12\n"),
		ThatNScript("-norc", "nonexistent.ns").
			ExitsWith(2).WritesStderrContaining("cannot read script:"),
		ThatNScript("-norc", "bad.ns").
			ExitsWith(2).WritesStderrContaining("not valid UTF-8"),
		ThatNScript("-norc", "a.ns", "b.ns").
			ExitsWith(2).WritesStderrContaining("at most one script may be given"),
	)
}

func TestScript_ParseOnly(t *testing.T) {
	Test(t, Program{},
		// Evaluation errors are not detected when only parsing.
		ThatNScript("-norc", "-parseonly", "-c", "floor('a')").DoesNothing(),
		ThatNScript("-norc", "-parseonly", "-c", "1 +").
			ExitsWith(2).WritesStderrContaining("Parse error:"),
	)
}

func TestScript_JSON(t *testing.T) {
	Test(t, Program{},
		ThatNScript("-norc", "-json", "-c", "x").
			ExitsWith(2).
			WritesStdout(`[{"fileName":"code from -c","start":0,"end":1,`+
				`"type":"runtime error","message":"unknown variable"}]`+"\n"),
		ThatNScript("-norc", "-json", "-parseonly", "-c", "5 5").
			ExitsWith(2).
			WritesStdout(`[{"fileName":"code from -c","start":2,"end":3,`+
				`"type":"parse error","message":"unexpected token after expression `+
				"(found `5`)"+`"}]`+"\n"),
	)
}
