package console

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nscript.dev/pkg/eval"
	"nscript.dev/pkg/parse"
	"nscript.dev/pkg/store"
)

func evalOrFatal(t *testing.T, ev *eval.Evaler, code string) {
	t.Helper()
	if _, err := ev.Eval(parse.Source{Name: "[test]", Code: code}); err != nil {
		t.Fatalf("Eval(%q) -> error %v", code, err)
	}
}

func TestVars_RoundTrip(t *testing.T) {
	st := store.MustTempStore(t)

	ev := eval.NewEvaler()
	evalOrFatal(t, ev, "x = 6 * 7")
	evalOrFatal(t, ev, `s = 'a\'b'`)
	evalOrFatal(t, ev, "z = none")
	saveVars(st, ev)

	vars, err := st.Vars()
	if err != nil {
		t.Fatalf("Vars -> error %v", err)
	}
	want := map[string]string{"x": "42", "s": `'a\'b'`, "z": "none"}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Errorf("saveVars stored unexpected renderings (-want +got):\n%s", diff)
	}

	ev2 := eval.NewEvaler()
	if err := loadVars(st, ev2); err != nil {
		t.Fatalf("loadVars -> error %v", err)
	}
	if v, ok := ev2.Var("x"); !ok || v.Kind != parse.Number || v.Num != 42 {
		t.Errorf("x loaded as %v %v, want the number 42", v.Kind, v.Num)
	}
	if v, ok := ev2.Var("s"); !ok || v.Kind != parse.String || v.Text != "a'b" {
		t.Errorf("s loaded as %v %q, want the string a'b", v.Kind, v.Text)
	}
	if v, ok := ev2.Var("z"); !ok || v.Kind != parse.None {
		t.Errorf("z loaded as %v, want none", v.Kind)
	}
}

func TestLoadVars_SkipsUnparsableEntries(t *testing.T) {
	st := store.MustTempStore(t)
	if err := st.SetVar("good", "5"); err != nil {
		t.Fatalf("SetVar -> error %v", err)
	}
	if err := st.SetVar("bad", "1 +"); err != nil {
		t.Fatalf("SetVar -> error %v", err)
	}

	ev := eval.NewEvaler()
	if err := loadVars(st, ev); err != nil {
		t.Fatalf("loadVars -> error %v, want nil", err)
	}
	if v, ok := ev.Var("good"); !ok || v.Num != 5 {
		t.Errorf("good loaded as %v, want 5", v)
	}
	if _, ok := ev.Var("bad"); ok {
		t.Errorf("bad was loaded, want it skipped")
	}
}
