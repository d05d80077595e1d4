// Package diag contains building blocks for expressing and showing
// diagnostic information tied to a range of source code.
package diag

import (
	"fmt"
	"strings"
)

// Context is a range of text in a piece of source code. It is typically used
// for errors that can be associated with a part of the source code, like lex,
// parse and evaluation errors.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit.
var (
	culpritLineBegin   = "\033[1;4m"
	culpritLineEnd     = "\033[m"
	culpritPlaceHolder = "^"
)

// Show shows the context: the name and line of the source code, followed by
// the relevant source excerpt with the culprit highlighted.
func (c *Context) Show(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	return c.Name + ", " + c.lineRange() +
		"\n" + sourceIndent + c.relevantSource(sourceIndent)
}

// ShowCompact is like Show, but with no line break between the position
// description and the source excerpt.
func (c *Context) ShowCompact(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Name + ", " + c.lineRange() + " "
	// Extra indent so that following lines line up with the first line.
	descIndent := strings.Repeat(" ", len([]rune(desc)))
	return desc + c.relevantSource(sourceIndent+descIndent)
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) lineRange() string {
	before := c.Source[:c.From]
	culprit := strings.TrimSuffix(c.Source[c.From:c.To], "\n")

	beginLine := strings.Count(before, "\n") + 1
	endLine := beginLine + strings.Count(culprit, "\n")

	if beginLine == endLine {
		return fmt.Sprintf("line %d:", beginLine)
	}
	return fmt.Sprintf("line %d-%d:", beginLine, endLine)
}

func (c *Context) relevantSource(sourceIndent string) string {
	before := c.Source[:c.From]
	culprit := c.Source[c.From:c.To]
	after := c.Source[c.To:]

	head := lastLine(before)

	// If the culprit ends with a newline, strip it. Otherwise the tail is
	// nonempty.
	var tail string
	if strings.HasSuffix(culprit, "\n") {
		culprit = culprit[:len(culprit)-1]
	} else {
		tail = firstLine(after)
	}

	var sb strings.Builder
	sb.WriteString(head)

	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(sourceIndent)
		}
		sb.WriteString(culpritLineBegin)
		sb.WriteString(line)
		sb.WriteString(culpritLineEnd)
	}

	sb.WriteString(tail)
	return sb.String()
}

func firstLine(s string) string {
	i := strings.IndexByte(s, '\n')
	if i == -1 {
		return s
	}
	return s[:i]
}

func lastLine(s string) string {
	// When s does not contain '\n', LastIndexByte returns -1, which happens to
	// be what we want.
	return s[strings.LastIndexByte(s, '\n')+1:]
}
