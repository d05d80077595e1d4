package eval

import (
	"fmt"

	"nscript.dev/pkg/diag"
	"nscript.dev/pkg/parse"
)

// Frame carries the state of one evaluation: the Evaler and the source the
// tree under evaluation came from, so that errors can pinpoint their culprit.
type Frame struct {
	*Evaler
	src parse.Source
}

func (fm *Frame) errorpf(r diag.Ranger, typ, format string, args ...interface{}) error {
	return &diag.Error{
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(fm.src.Name, fm.src.Code, r),
	}
}

// noneNode returns a None value spanning the given range.
func noneNode(r diag.Ranger) parse.Node {
	return parse.Node{Ranging: r.Range(), Kind: parse.None, Text: "none"}
}

// eval evaluates a node recursively by kind. It never returns a partial
// result: the first rule violation anywhere aborts with an error.
func (fm *Frame) eval(n parse.Node) (parse.Node, error) {
	switch n.Kind {
	case parse.Number, parse.String, parse.None:
		return n, nil
	case parse.Identifier:
		return fm.evalIdentifier(n)
	case parse.Unary:
		return fm.evalUnary(n)
	case parse.Binary:
		return fm.evalBinary(n)
	case parse.Assign:
		return fm.evalAssign(n)
	case parse.Call:
		return fm.evalCall(n)
	default:
		return parse.Node{}, fm.errorpf(n, diag.RuntimeError,
			"cannot evaluate `%s`", n.Kind)
	}
}

func (fm *Frame) evalIdentifier(n parse.Node) (parse.Node, error) {
	v, ok := fm.env[n.Text]
	if !ok {
		return parse.Node{}, fm.errorpf(n, diag.RuntimeError, "unknown variable")
	}
	return v, nil
}

func (fm *Frame) evalUnary(n parse.Node) (parse.Node, error) {
	term, err := fm.eval(n.Un.Operand)
	if err != nil {
		return parse.Node{}, err
	}
	// Unary can only be applied to numbers.
	if term.Kind != parse.Number {
		return parse.Node{}, fm.errorpf(term, diag.TypeError,
			"type `%s` does not support unary `%s`", term.Kind, n.Un.Op.Kind)
	}
	if n.Un.Op.Kind == parse.Minus {
		term.Num = -term.Num
	}
	term.Ranging = n.Ranging
	return term, nil
}

func (fm *Frame) evalBinary(n parse.Node) (parse.Node, error) {
	b := n.Bin
	left, err := fm.eval(b.Left)
	if err != nil {
		return parse.Node{}, err
	}
	right, err := fm.eval(b.Right)
	if err != nil {
		return parse.Node{}, err
	}

	// Every binary operator requires operands of the same kind.
	if left.Kind != right.Kind {
		return parse.Node{}, fm.errorpf(b.Op, diag.TypeError,
			"unknown bin `%s` between different types (`%s` and `%s`)",
			b.Op, left.Kind, right.Kind)
	}

	result := parse.Node{Ranging: n.Ranging, Kind: left.Kind}
	switch left.Kind {
	case parse.Number:
		num, err := fm.evalNumberOp(b.Op.Kind, left.Num, right.Num, right)
		if err != nil {
			return parse.Node{}, err
		}
		result.Num = num
	case parse.String:
		// Strings only support concatenation.
		if b.Op.Kind != parse.Plus {
			return parse.Node{}, fm.errorpf(b.Op, diag.TypeError,
				"string does not support bin `%s`", b.Op.Kind)
		}
		result.Text = left.Text + right.Text
	default:
		return parse.Node{}, fm.errorpf(b.Op, diag.TypeError,
			"type `%s` does not support bin", left.Kind)
	}
	return result, nil
}

func (fm *Frame) evalNumberOp(op parse.Kind, l, r float64, rightPos diag.Ranger) (float64, error) {
	switch op {
	case parse.Plus:
		return l + r, nil
	case parse.Minus:
		return l - r, nil
	case parse.Star:
		return l * r, nil
	default: // parse.Slash; the parser only produces these four operators.
		if r == 0 {
			return 0, fm.errorpf(rightPos, diag.RuntimeError, "dividing by 0")
		}
		return l / r, nil
	}
}

func (fm *Frame) evalAssign(n parse.Node) (parse.Node, error) {
	expr, err := fm.eval(n.Assign.Expr)
	if err != nil {
		return parse.Node{}, err
	}
	// The stored value is a snapshot: evaluation results are leaf nodes, so
	// assignment copies it out of the tree it came from.
	fm.env[n.Assign.Target.Text] = expr
	return noneNode(n), nil
}

func (fm *Frame) evalCall(n parse.Node) (parse.Node, error) {
	c := n.Call
	if c.Name.Kind == parse.String {
		// Call syntax applied to a string names a host process. This
		// implementation defines no process-spawning semantics.
		return parse.Node{}, fm.errorpf(c.Name, diag.RuntimeError,
			"calling a process by name is not supported")
	}
	fn, ok := builtinFns[c.Name.Text]
	if !ok {
		return parse.Node{}, fm.errorpf(c.Name, diag.RuntimeError,
			"unknown builtin function")
	}
	return fn(fm, n)
}
