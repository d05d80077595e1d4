package diag

import (
	"strings"
	"testing"
)

func TestError(t *testing.T) {
	err := &Error{
		Type:    ParseError,
		Message: "unexpected token (found `)`)",
		Context: *NewContext("[test]", "1 + )", Ranging{4, 5}),
	}

	wantErrorString := "parse error: 4-5 in [test]: unexpected token (found `)`)"
	if got := err.Error(); got != wantErrorString {
		t.Errorf("Error() -> %q, want %q", got, wantErrorString)
	}

	if got := err.Range(); got != (Ranging{4, 5}) {
		t.Errorf("Range() -> %v, want %v", got, Ranging{4, 5})
	}

	show := err.Show("")
	if !strings.HasPrefix(show, "Parse error:") {
		t.Errorf("Show() -> %q, want leading title-cased type", show)
	}
	if !strings.Contains(show, "unexpected token") {
		t.Errorf("Show() -> %q, want message included", show)
	}
}

func TestMixedRanging(t *testing.T) {
	got := MixedRanging(Ranging{1, 3}, Ranging{5, 9})
	if got != (Ranging{1, 9}) {
		t.Errorf("MixedRanging -> %v, want %v", got, Ranging{1, 9})
	}
}
