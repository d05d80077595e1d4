package parse

import (
	"strconv"
	"strings"

	"nscript.dev/pkg/diag"
)

// Kind identifies what a Node is: a value, a syntax tree construct, or a
// token-only kind produced by the tokenizer.
type Kind byte

// Possible Kind values.
const (
	Bad Kind = iota
	Eof
	Number
	String
	Identifier
	None
	Binary
	Unary
	Assign
	Call
	Plus
	Minus
	Star
	Slash
	LParen
	RParen
	Comma
	Eq
)

var kindNames = [...]string{
	Bad:        "bad token",
	Eof:        "eof",
	Number:     "number",
	String:     "string",
	Identifier: "identifier",
	None:       "none",
	Binary:     "binary",
	Unary:      "unary",
	Assign:     "assign",
	Call:       "call",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	LParen:     "(",
	RParen:     ")",
	Comma:      ",",
	Eq:         "=",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is the tagged representation shared by lexical tokens and syntax tree
// nodes. Kind determines which payload fields are meaningful:
//
//   - Number: Num, and Text holding the source spelling.
//   - String: Text holding the decoded value.
//   - Identifier, None and the token-only kinds: Text holding the source text.
//   - Binary, Unary, Assign, Call: the struct pointer of the same name.
//
// A Node exclusively owns its children; subtrees are never shared.
type Node struct {
	diag.Ranging
	Kind Kind

	Num  float64
	Text string

	Bin    *BinNode
	Un     *UnNode
	Assign *AssignNode
	Call   *CallNode
}

// BinNode is the payload of a Binary node.
type BinNode struct {
	Left  Node
	Op    Node
	Right Node
}

// UnNode is the payload of a Unary node.
type UnNode struct {
	Op      Node
	Operand Node
}

// AssignNode is the payload of an Assign node. Target is always an
// Identifier.
type AssignNode struct {
	Target Node
	Expr   Node
}

// CallNode is the payload of a Call node. Name is an Identifier or a String.
type CallNode struct {
	Name Node
	Args []Node
}

// String returns the canonical textual rendering of the node. Parsing the
// rendering of a value node yields an equal value.
func (n Node) String() string {
	switch n.Kind {
	case Number:
		return FormatNumber(n.Num)
	case String:
		return Quote(n.Text)
	case Binary:
		return n.Bin.Left.String() + " " + n.Bin.Op.String() + " " + n.Bin.Right.String()
	case Unary:
		return n.Un.Op.String() + n.Un.Operand.String()
	case Assign:
		return n.Assign.Target.String() + " = " + n.Assign.Expr.String()
	case Call:
		args := make([]string, len(n.Call.Args))
		for i, arg := range n.Call.Args {
			args[i] = arg.String()
		}
		return n.Call.Name.String() + "(" + strings.Join(args, ", ") + ")"
	case Eof:
		return "<eof>"
	default:
		return n.Text
	}
}

// FormatNumber renders a number value canonically: the shortest decimal form,
// with trailing fractional zeros and a trailing decimal point stripped.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
