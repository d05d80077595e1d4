package console

import (
	"nscript.dev/pkg/eval"
	"nscript.dev/pkg/parse"
	"nscript.dev/pkg/store"
)

// Variables cross the storage boundary in their canonical textual rendering:
// saving renders each value, and loading parses and evaluates the rendering
// back into a value. The codec round-trip guarantees this is lossless.

// loadVars populates the environment from the store.
func loadVars(st *store.Store, ev *eval.Evaler) error {
	vars, err := st.Vars()
	if err != nil {
		return err
	}
	for name, text := range vars {
		v, err := ev.Eval(parse.Source{Name: "db:" + name, Code: text})
		if err != nil {
			logger.Printf("skipping stored variable %s = %q: %v", name, text, err)
			continue
		}
		ev.SetVar(name, v)
	}
	return nil
}

// saveVars renders the environment into the store.
func saveVars(st *store.Store, ev *eval.Evaler) {
	for _, name := range ev.VarNames() {
		v, _ := ev.Var(name)
		if err := st.SetVar(name, v.String()); err != nil {
			logger.Printf("cannot save variable %s: %v", name, err)
		}
	}
}
