package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"nscript.dev/pkg/diag"
)

// tokenizer produces tokens of a Source one at a time, on demand. Tokens are
// Nodes of leaf or token-only kinds; they are consumed by the parser and
// never stored.
type tokenizer struct {
	src Source
	pos int
}

const eofRune rune = -1

func (lx *tokenizer) peek() rune {
	if lx.pos == len(lx.src.Code) {
		return eofRune
	}
	r, _ := utf8.DecodeRuneInString(lx.src.Code[lx.pos:])
	return r
}

func (lx *tokenizer) next() rune {
	if lx.pos == len(lx.src.Code) {
		return eofRune
	}
	r, s := utf8.DecodeRuneInString(lx.src.Code[lx.pos:])
	lx.pos += s
	return r
}

func (lx *tokenizer) eof() bool { return lx.pos == len(lx.src.Code) }

func (lx *tokenizer) errorp(r diag.Ranger, typ, format string, args ...interface{}) error {
	return &diag.Error{
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
		Context: *diag.NewContext(lx.src.Name, lx.src.Code, r),
	}
}

var tokenKinds = map[rune]Kind{
	'+': Plus, '-': Minus, '*': Star, '/': Slash,
	'(': LParen, ')': RParen, ',': Comma, '=': Eq,
}

// nextToken returns the next token. Whitespace has no meaning and is skipped.
// Once the source is exhausted it returns Eof forever.
func (lx *tokenizer) nextToken() (Node, error) {
	for !lx.eof() && unicode.IsSpace(lx.peek()) {
		lx.next()
	}
	if lx.eof() {
		return Node{Ranging: diag.PointRanging(lx.pos), Kind: Eof}, nil
	}

	c := lx.peek()
	switch {
	case isIdentifierStart(c):
		return lx.collectIdentifier(), nil
	case isDigit(c) || c == '.' && isDigit(lx.peekPast(1)):
		return lx.collectNumber()
	case c == '\'':
		return lx.collectString()
	}
	if kind, ok := tokenKinds[c]; ok {
		start := lx.pos
		lx.next()
		return Node{Ranging: diag.Ranging{From: start, To: lx.pos}, Kind: kind, Text: string(c)}, nil
	}
	start := lx.pos
	lx.next()
	return Node{Ranging: diag.Ranging{From: start, To: lx.pos}, Kind: Bad, Text: lx.src.Code[start:lx.pos]}, nil
}

// peekPast peeks the rune n bytes past the current position.
func (lx *tokenizer) peekPast(n int) rune {
	if lx.pos+n >= len(lx.src.Code) {
		return eofRune
	}
	r, _ := utf8.DecodeRuneInString(lx.src.Code[lx.pos+n:])
	return r
}

// collectIdentifier collects a maximal run of identifier characters. The
// reserved word "none" becomes a None token.
func (lx *tokenizer) collectIdentifier() Node {
	start := lx.pos
	for !lx.eof() && isIdentifierCont(lx.peek()) {
		lx.next()
	}
	text := lx.src.Code[start:lx.pos]
	kind := Identifier
	if text == "none" {
		kind = None
	}
	return Node{Ranging: diag.Ranging{From: start, To: lx.pos}, Kind: kind, Text: text}
}

// collectNumber collects a numeric literal: a run of digits and dots, with at
// most one dot, not ending in a dot, and not glued to an identifier.
func (lx *tokenizer) collectNumber() (Node, error) {
	start := lx.pos
	for !lx.eof() && (isDigit(lx.peek()) || lx.peek() == '.') {
		lx.next()
	}
	seq := lx.src.Code[start:lx.pos]
	pos := diag.Ranging{From: start, To: lx.pos}

	if strings.Count(seq, ".") > 1 {
		return Node{}, lx.errorp(pos, diag.NumberFormatError,
			"number cannot include more than one dot")
	}
	if strings.HasSuffix(seq, ".") {
		return Node{}, lx.errorp(pos, diag.NumberFormatError,
			"number cannot end with a dot (correction: `%s`)", seq[:len(seq)-1])
	}
	if !lx.eof() && isIdentifierCont(lx.peek()) {
		_, s := utf8.DecodeRuneInString(lx.src.Code[lx.pos:])
		return Node{}, lx.errorp(diag.Ranging{From: start, To: lx.pos + s}, diag.NumberFormatError,
			"number cannot include part of identifier (correction: `%s %s...`)",
			seq, lx.src.Code[lx.pos:lx.pos+s])
	}

	value, err := strconv.ParseFloat(seq, 64)
	if err != nil {
		return Node{}, lx.errorp(pos, diag.NumberFormatError, "invalid number")
	}
	return Node{Ranging: pos, Kind: Number, Num: value, Text: seq}, nil
}

// collectString collects a single-quoted string literal, decoding escape
// sequences on the way. A quote preceded by an odd number of backslashes is
// escaped and does not terminate the literal.
func (lx *tokenizer) collectString() (Node, error) {
	start := lx.pos
	// Eat the opening quote.
	lx.next()

	var sb strings.Builder
	for {
		if lx.eof() {
			return Node{}, lx.errorp(diag.Ranging{From: start, To: lx.pos},
				diag.LexError, "unclosed string")
		}
		if lx.peek() == '\'' {
			break
		}
		if lx.peek() == '\\' {
			escStart := lx.pos
			lx.next()
			if lx.eof() {
				return Node{}, lx.errorp(diag.Ranging{From: start, To: lx.pos},
					diag.LexError, "unclosed string")
			}
			code := lx.next()
			decoded, ok := unescapes[code]
			if !ok {
				return Node{}, lx.errorp(diag.Ranging{From: escStart, To: lx.pos},
					diag.LexError, "unknown escape code `\\%c`", code)
			}
			sb.WriteRune(decoded)
			continue
		}
		sb.WriteRune(lx.next())
	}
	// Eat the closing quote.
	lx.next()
	return Node{Ranging: diag.Ranging{From: start, To: lx.pos}, Kind: String, Text: sb.String()}, nil
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isIdentifierStart(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isIdentifierCont(r rune) bool {
	return isIdentifierStart(r) || isDigit(r)
}
