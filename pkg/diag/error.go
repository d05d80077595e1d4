package diag

import (
	"fmt"
	"strings"
)

// Error type values used by the language implementation. Hosts can compare
// against these to tell failure classes apart.
const (
	LexError          = "lex error"
	NumberFormatError = "number format error"
	ParseError        = "parse error"
	TypeError         = "type error"
	ArgCountError     = "arg count error"
	RuntimeError      = "runtime error"
)

// Error represents a positioned error with a source context that can be
// showed. It is the only error type surfaced by tokenizing, parsing and
// evaluating.
type Error struct {
	Type    string
	Message string
	Context Context
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %d-%d in %s: %s",
		e.Type, e.Context.From, e.Context.To, e.Context.Name, e.Message)
}

// Range returns the range of the error.
func (e *Error) Range() Ranging {
	return e.Context.Range()
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	header := fmt.Sprintf("%s: \033[31;1m%s\033[m\n", title(e.Type), e.Message)
	return header + e.Context.ShowCompact(indent+"  ")
}

// title uppercases the first letter of s, leaving the rest untouched.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
