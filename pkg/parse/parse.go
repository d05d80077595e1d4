// Package parse implements the tokenizer and parser for the NScript
// language. Its entry point is [Parse], which turns one piece of source code
// into a position-annotated syntax tree.
package parse

import (
	"fmt"

	"nscript.dev/pkg/diag"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// maxDepth bounds the nesting depth of terms. Without the bound,
// pathologically deep unary or parenthesis chains would exhaust the Go stack
// instead of producing a reportable error.
const maxDepth = 1000

// Parse parses the source code of a single expression or statement and
// returns its syntax tree. The error, if not nil, is always a *diag.Error
// carrying the position of the first violation.
func Parse(src Source) (Node, error) {
	ps := &parser{src: src, lx: tokenizer{src: src}}
	if err := ps.advance(); err != nil {
		return Node{}, err
	}
	n, err := ps.expression()
	if err != nil {
		return Node{}, err
	}
	if ps.cur.Kind != Eof {
		return Node{}, ps.errorp(ps.cur, diag.ParseError,
			"unexpected token after expression (found `%s`)", ps.cur)
	}
	return n, nil
}

// parser is a recursive-descent consumer of the token stream, with a
// one-token lookahead buffer in cur.
type parser struct {
	src   Source
	lx    tokenizer
	cur   Node
	prev  Node
	depth int
}

func (ps *parser) advance() error {
	tok, err := ps.lx.nextToken()
	if err != nil {
		return err
	}
	ps.prev, ps.cur = ps.cur, tok
	return nil
}

func (ps *parser) errorp(r diag.Ranger, typ, format string, args ...interface{}) error {
	return &diag.Error{
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(ps.src.Name, ps.src.Code, r),
	}
}

// expect checks that the current token has the wanted kind and advances past
// it.
func (ps *parser) expect(kind Kind) error {
	if ps.cur.Kind != kind {
		return ps.errorp(ps.cur, diag.ParseError,
			"expected `%s` (found `%s`)", kind, ps.cur)
	}
	return ps.advance()
}

// expression := additive
func (ps *parser) expression() (Node, error) {
	return ps.binary(ps.multiplicative, Plus, Minus)
}

// multiplicative := term (('*' | '/') term)*
func (ps *parser) multiplicative() (Node, error) {
	return ps.binary(ps.term, Star, Slash)
}

// binary parses one precedence level of left-associative binary expressions:
// it folds the left operand with each following operator-operand pair, so
// `a - b - c` parses as `(a-b)-c`.
func (ps *parser) binary(operand func() (Node, error), ops ...Kind) (Node, error) {
	left, err := operand()
	if err != nil {
		return Node{}, err
	}
	for containsKind(ops, ps.cur.Kind) {
		op := ps.cur
		if err := ps.advance(); err != nil {
			return Node{}, err
		}
		right, err := operand()
		if err != nil {
			return Node{}, err
		}
		left = Node{
			Ranging: diag.MixedRanging(left, right),
			Kind:    Binary,
			Bin:     &BinNode{Left: left, Op: op, Right: right},
		}
	}
	return left, nil
}

// term parses a unary chain, a leaf value, or a parenthesized expression,
// followed by at most one postfix (a call or an assignment).
func (ps *parser) term() (Node, error) {
	ps.depth++
	defer func() { ps.depth-- }()
	if ps.depth > maxDepth {
		return Node{}, ps.errorp(ps.cur, diag.ParseError, "expression nested too deeply")
	}

	tok := ps.cur
	if err := ps.advance(); err != nil {
		return Node{}, err
	}

	var t Node
	switch tok.Kind {
	case Identifier, Number, String, None:
		t = tok
	case Plus, Minus:
		// Unary is right-recursive, allowing chains like `--3`.
		operand, err := ps.term()
		if err != nil {
			return Node{}, err
		}
		t = Node{
			Ranging: diag.MixedRanging(tok, operand),
			Kind:    Unary,
			Un:      &UnNode{Op: tok, Operand: operand},
		}
	case LParen:
		inner, err := ps.expression()
		if err != nil {
			return Node{}, err
		}
		if err := ps.expect(RParen); err != nil {
			return Node{}, err
		}
		t = inner
	default:
		return Node{}, ps.errorp(tok, diag.ParseError,
			"unexpected token (found `%s`)", tok)
	}

	switch ps.cur.Kind {
	case LParen:
		return ps.call(t)
	case Eq:
		return ps.assign(t)
	}
	return t, nil
}

// call parses the postfix argument list of a call. The name must have been
// parsed already and must be an Identifier or a String.
func (ps *parser) call(name Node) (Node, error) {
	if name.Kind != Identifier && name.Kind != String {
		return Node{}, ps.errorp(name, diag.ParseError,
			"expected string or identifier call name")
	}
	start := ps.cur.From
	// Eat the opening parenthesis.
	if err := ps.advance(); err != nil {
		return Node{}, err
	}

	var args []Node
	for {
		if ps.cur.Kind == Eof {
			return Node{}, ps.errorp(diag.Ranging{From: start, To: ps.prev.To},
				diag.ParseError, "unclosed call parameters list")
		}
		if ps.cur.Kind == RParen {
			if err := ps.advance(); err != nil {
				return Node{}, err
			}
			return Node{
				Ranging: diag.Ranging{From: name.From, To: ps.prev.To},
				Kind:    Call,
				Call:    &CallNode{Name: name, Args: args},
			}, nil
		}
		if len(args) > 0 {
			if err := ps.expect(Comma); err != nil {
				return Node{}, err
			}
		}
		arg, err := ps.expression()
		if err != nil {
			return Node{}, err
		}
		args = append(args, arg)
	}
}

// assign parses the postfix `= expression` of an assignment. The target must
// have been parsed already and must be an Identifier.
func (ps *parser) assign(target Node) (Node, error) {
	if target.Kind != Identifier {
		return Node{}, ps.errorp(target, diag.ParseError,
			"expected an identifier when assigning")
	}
	// Eat the `=`.
	if err := ps.advance(); err != nil {
		return Node{}, err
	}
	expr, err := ps.expression()
	if err != nil {
		return Node{}, err
	}
	return Node{
		Ranging: diag.MixedRanging(target, expr),
		Kind:    Assign,
		Assign:  &AssignNode{Target: target, Expr: expr},
	}, nil
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
