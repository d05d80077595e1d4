package eval

import (
	"io"
	"math"
	"strings"

	"nscript.dev/pkg/diag"
	"nscript.dev/pkg/parse"
)

// A builtinFn implements a named builtin. It receives the whole Call node so
// that it can position errors and control evaluation of its own arguments.
type builtinFn func(fm *Frame, call parse.Node) (parse.Node, error)

var builtinFns = map[string]builtinFn{}

// Registration cannot happen in the map literal: the builtin bodies reach
// builtinFns again through (*Frame).eval, which would be an initialization
// cycle.
func init() {
	addBuiltinFns(map[string]builtinFn{
		"print": printFn,
		"floor": floorFn,
	})
}

func addBuiltinFns(fns map[string]builtinFn) {
	for name, fn := range fns {
		builtinFns[name] = fn
	}
}

// BuiltinNames returns the names of all builtins, for use by hosts offering
// completion.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinFns))
	for name := range builtinFns {
		names = append(names, name)
	}
	return names
}

// printFn renders each argument as written, in canonical textual form, and
// writes the concatenation with no separator and no trailing terminator,
// flushing before returning. Arguments are not evaluated. It accepts any
// number of arguments and evaluates to None.
func printFn(fm *Frame, call parse.Node) (parse.Node, error) {
	var sb strings.Builder
	for _, arg := range call.Call.Args {
		sb.WriteString(arg.String())
	}
	if _, err := io.WriteString(fm.out, sb.String()); err != nil {
		return parse.Node{}, fm.errorpf(call, diag.RuntimeError,
			"cannot write output: %v", err)
	}
	if f, ok := fm.out.(interface{ Flush() error }); ok {
		f.Flush()
	}
	return noneNode(call), nil
}

// floorFn truncates its single Number argument toward zero, so floor(-2.9)
// is -2.
func floorFn(fm *Frame, call parse.Node) (parse.Node, error) {
	if err := fm.expectArgCount(call.Call, 1); err != nil {
		return parse.Node{}, err
	}
	arg := call.Call.Args[0]
	v, err := fm.eval(arg)
	if err != nil {
		return parse.Node{}, err
	}
	if v, err = fm.expectType(v, parse.Number, arg); err != nil {
		return parse.Node{}, err
	}
	v.Num = math.Trunc(v.Num)
	return v, nil
}

func (fm *Frame) expectArgCount(call *parse.CallNode, count int) error {
	if len(call.Args) != count {
		return fm.errorpf(call.Name, diag.ArgCountError,
			"expected args %d (found %d)", count, len(call.Args))
	}
	return nil
}

func (fm *Frame) expectType(v parse.Node, kind parse.Kind, r diag.Ranger) (parse.Node, error) {
	if v.Kind != kind {
		return parse.Node{}, fm.errorpf(r, diag.TypeError,
			"expected a value with type `%s` (found `%s`)", kind, v.Kind)
	}
	return v, nil
}
