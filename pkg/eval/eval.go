// Package eval handles evaluation of parsed NScript code and maintains the
// variable environment.
package eval

import (
	"io"
	"os"
	"sort"
	"sync"

	"nscript.dev/pkg/parse"
)

// Evaler provides methods for evaluating code, and maintains the environment
// that is persisted between evaluation of different pieces of code. The
// environment is the only durable state; everything else lives for one
// evaluation.
//
// All methods serialize on an internal mutex, so the environment may be read
// from another goroutine (as the console's signal handler does) while an
// evaluation is in flight. Each evaluation is atomic with respect to such
// reads.
type Evaler struct {
	mu  sync.Mutex
	env map[string]parse.Node
	out io.Writer
}

// NewEvaler creates a new Evaler with an empty environment, printing to
// standard output.
func NewEvaler() *Evaler {
	return &Evaler{env: make(map[string]parse.Node), out: os.Stdout}
}

// SetOutput changes the writer that the print builtin writes to.
func (ev *Evaler) SetOutput(w io.Writer) {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	ev.out = w
}

// Eval parses the source code and evaluates the resulting tree. The returned
// node is always a value kind (Number, String or None); the error, if not
// nil, is always a *diag.Error.
func (ev *Evaler) Eval(src parse.Source) (parse.Node, error) {
	n, err := parse.Parse(src)
	if err != nil {
		return parse.Node{}, err
	}
	ev.mu.Lock()
	defer ev.mu.Unlock()
	fm := &Frame{ev, src}
	return fm.eval(n)
}

// Var returns the value of the named variable, if it is set.
func (ev *Evaler) Var(name string) (parse.Node, bool) {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	v, ok := ev.env[name]
	return v, ok
}

// SetVar sets the value of the named variable, overwriting any existing
// value.
func (ev *Evaler) SetVar(name string, v parse.Node) {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	ev.env[name] = v
}

// VarNames returns the names of all set variables, sorted.
func (ev *Evaler) VarNames() []string {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	names := make([]string, 0, len(ev.env))
	for name := range ev.env {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
