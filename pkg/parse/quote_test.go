package parse

import (
	"testing"

	"nscript.dev/pkg/tt"
)

func TestQuote(t *testing.T) {
	tt.Test(t, tt.Fn("Quote", Quote), tt.Table{
		tt.Args("").Rets(`''`),
		tt.Args("foo").Rets(`'foo'`),
		tt.Args("a'b").Rets(`'a\'b'`),
		tt.Args(`a\b`).Rets(`'a\\b'`),
		tt.Args("a\nb\tc").Rets(`'a\nb\tc'`),
		tt.Args("a\rb").Rets(`'a\rb'`),
		tt.Args("白鵬翔").Rets(`'白鵬翔'`),
	})
}

// Decoding is the exact inverse of Quote: for any value s, parsing Quote(s)
// yields s back.
func TestQuote_RoundTrip(t *testing.T) {
	values := []string{
		"", "foo", "a'b", `a\b`, `a\\'b`, "a\nb\tc\r", "白鵬翔", "mixed '\\\n 下",
	}
	for _, s := range values {
		quoted := Quote(s)
		n, err := Parse(Source{Name: "[test]", Code: quoted})
		if err != nil {
			t.Errorf("Parse(Quote(%q)) -> error %v, want nil", s, err)
			continue
		}
		if n.Kind != String || n.Text != s {
			t.Errorf("Parse(Quote(%q)) -> %s %q, want original string back", s, n.Kind, n.Text)
		}
	}
}

// Re-encoding the decoded value of a canonical literal yields the literal.
func TestQuote_CanonicalTextFixedPoint(t *testing.T) {
	literals := []string{
		`''`, `'foo'`, `'a\'b'`, `'a\\b'`, `'a\nb\tc'`, `'白鵬翔'`,
	}
	for _, lit := range literals {
		n, err := Parse(Source{Name: "[test]", Code: lit})
		if err != nil {
			t.Fatalf("Parse(%q) -> error %v, want nil", lit, err)
		}
		if got := Quote(n.Text); got != lit {
			t.Errorf("Quote(decode(%q)) -> %q, want the literal back", lit, got)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tt.Test(t, tt.Fn("FormatNumber", FormatNumber), tt.Table{
		tt.Args(3.0).Rets("3"),
		tt.Args(3.5).Rets("3.5"),
		tt.Args(0.5).Rets("0.5"),
		tt.Args(-2.0).Rets("-2"),
		tt.Args(1e3).Rets("1000"),
		tt.Args(0.0).Rets("0"),
	})
}
