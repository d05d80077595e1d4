// Package progtest provides utilities for testing subprograms. Tests are
// written in a fluent style:
//
//	Test(t, SomeProgram{},
//	    ThatNScript("-c", "1 + 2").WritesStdout("▶ 3\n"))
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"nscript.dev/pkg/must"
	"nscript.dev/pkg/prog"
)

// Case is a test case against a subprogram.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit           int
	stdout, stderr output
}

type output struct {
	text    string
	partial bool
}

// ThatNScript returns a new Case with the given command-line arguments.
func ThatNScript(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an altered Case that feeds the given input to the
// program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c unchanged. It marks cases that should write no
// output and exit with 0, which is what an empty Case already requires.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program to exit with
// the given status.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{text: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program's
// stdout to contain the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{text: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{text: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program's
// stderr to contain the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{text: s, partial: true}
	return c
}

// Test runs the test cases against the program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.want.exit {
				t.Errorf("got exit %d, want %d", exit, c.want.exit)
			}
			checkOutput(t, "stdout", stdout, c.want.stdout)
			checkOutput(t, "stderr", stderr, c.want.stderr)
		})
	}
}

func checkOutput(t *testing.T, what, got string, want output) {
	t.Helper()
	if want.partial {
		if !strings.Contains(got, want.text) {
			t.Errorf("got %s %q, want string containing %q", what, got, want.text)
		}
	} else if got != want.text {
		t.Errorf("got %s %q, want %q", what, got, want.text)
	}
}

// Run runs the program with the given stdin content and arguments, and
// returns the exit status along with the captured stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	in0, in1 := must.Pipe()
	must.OK1(in1.WriteString(stdin))
	in1.Close()
	out0, out1 := must.Pipe()
	err0, err1 := must.Pipe()

	outCh := drain(out0)
	errCh := drain(err0)
	exit = prog.Run([3]*os.File{in0, out1, err1},
		append([]string{"nscript"}, args...), p)
	in0.Close()
	out1.Close()
	err1.Close()
	return exit, <-outCh, <-errCh
}

func drain(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() {
		bytes, _ := io.ReadAll(r)
		r.Close()
		ch <- string(bytes)
	}()
	return ch
}
