package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVar_SetGetDel(t *testing.T) {
	st := MustTempStore(t)

	if _, err := st.Var("x"); err != ErrNoVar {
		t.Errorf("Var on missing variable -> error %v, want ErrNoVar", err)
	}

	if err := st.SetVar("x", "5"); err != nil {
		t.Fatalf("SetVar -> error %v", err)
	}
	if v, err := st.Var("x"); v != "5" || err != nil {
		t.Errorf("Var -> (%q, %v), want (%q, nil)", v, err, "5")
	}

	// Overwrite.
	if err := st.SetVar("x", "'foo'"); err != nil {
		t.Fatalf("SetVar -> error %v", err)
	}
	if v, _ := st.Var("x"); v != "'foo'" {
		t.Errorf("Var after overwrite -> %q, want %q", v, "'foo'")
	}

	if err := st.DelVar("x"); err != nil {
		t.Fatalf("DelVar -> error %v", err)
	}
	if _, err := st.Var("x"); err != ErrNoVar {
		t.Errorf("Var after DelVar -> error %v, want ErrNoVar", err)
	}
}

func TestDelVar_MissingVariableIsANop(t *testing.T) {
	st := MustTempStore(t)
	if err := st.DelVar("nonexistent"); err != nil {
		t.Errorf("DelVar on missing variable -> error %v, want nil", err)
	}
}

func TestVars(t *testing.T) {
	st := MustTempStore(t)

	vars, err := st.Vars()
	if err != nil {
		t.Fatalf("Vars -> error %v", err)
	}
	if len(vars) != 0 {
		t.Errorf("Vars of empty store -> %v, want empty map", vars)
	}

	want := map[string]string{"x": "5", "y": "'a b'", "z": "none"}
	for n, v := range want {
		if err := st.SetVar(n, v); err != nil {
			t.Fatalf("SetVar(%q, %q) -> error %v", n, v, err)
		}
	}
	vars, err = st.Vars()
	if err != nil {
		t.Fatalf("Vars -> error %v", err)
	}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Errorf("Vars() returns unexpected map (-want +got):\n%s", diff)
	}
}

func TestNewStore_PersistsAcrossReopen(t *testing.T) {
	st := MustTempStore(t)
	dbname := st.db.Path()
	if err := st.SetVar("x", "42"); err != nil {
		t.Fatalf("SetVar -> error %v", err)
	}
	if err := st.Close(); err != nil {
		t.Fatalf("Close -> error %v", err)
	}

	st2, err := NewStore(dbname)
	if err != nil {
		t.Fatalf("NewStore on existing file -> error %v", err)
	}
	defer st2.Close()
	if v, err := st2.Var("x"); v != "42" || err != nil {
		t.Errorf("Var after reopen -> (%q, %v), want (%q, nil)", v, err, "42")
	}
}

func TestNewStore_BadPath(t *testing.T) {
	_, err := NewStore("/nonexistent-dir-for-sure/db")
	if err == nil {
		t.Errorf("NewStore with an uncreatable path -> nil error, want non-nil")
	}
}
